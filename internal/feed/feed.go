package feed

import (
	"time"

	"github.com/gorilla/feeds"
	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/internal/excerpt"
	"github.com/siahsang/blogfront/internal/utils/stringutils"
	"github.com/siahsang/blogfront/models"
)

type Options struct {
	Title       string
	Description string
	// BaseURL is the public address of the API; item links point below it.
	BaseURL string
}

// Build turns posts into a feed, newest first.
func Build(opts Options, posts []models.Post) *feeds.Feed {
	f := &feeds.Feed{
		Title:       opts.Title,
		Description: opts.Description,
		Link:        &feeds.Link{Href: opts.BaseURL},
		Id:          opts.BaseURL + "/api/feed",
	}

	for i := len(posts) - 1; i >= 0; i-- {
		post := posts[i]
		created, _ := time.Parse(models.DateLayout, post.Date)
		link := opts.BaseURL + "/api/posts/" + stringutils.ToString(post.ID)

		item := &feeds.Item{
			Title:       post.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Author:      &feeds.Author{Name: post.Author},
			Created:     created,
			Description: excerpt.Of(post.Content),
		}
		if post.ImageURL != "" {
			item.Enclosure = &feeds.Enclosure{Url: post.ImageURL, Type: "image/*", Length: "0"}
		}
		f.Items = append(f.Items, item)

		if f.Updated.Before(created) {
			f.Updated = created
		}
	}

	return f
}

func RSS(opts Options, posts []models.Post) (string, error) {
	rss, err := Build(opts, posts).ToRss()
	if err != nil {
		return "", xerrors.New(err)
	}
	return rss, nil
}
