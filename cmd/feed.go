package main

import (
	"net/http"

	"github.com/siahsang/blogfront/internal/feed"
	"github.com/siahsang/blogfront/internal/fetch"
	"github.com/siahsang/blogfront/models"
)

func (app *application) showFeed(w http.ResponseWriter, r *http.Request) {
	state := fetch.Get[[]models.Post](r.Context(), app.source, "/posts")
	if state.Error != "" {
		app.sourceErrorResponse(w, r, state.Err())
		return
	}

	rss, err := feed.RSS(feed.Options{
		Title:       "Blog",
		Description: "Últimos posts del blog",
		BaseURL:     app.config.BaseURL,
	}, state.Data)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rss)); err != nil {
		app.logger.Error(err.Error())
	}
}
