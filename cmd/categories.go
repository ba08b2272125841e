package main

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/siahsang/blogfront/internal/fetch"
	"github.com/siahsang/blogfront/internal/utils/collectionutils"
	"github.com/siahsang/blogfront/models"
)

func (app *application) listCategories(w http.ResponseWriter, r *http.Request) {
	type category struct {
		Name  string `json:"name"`
		Posts int    `json:"posts"`
	}

	state := fetch.Get[[]models.Post](r.Context(), app.source, "/posts")
	if state.Error != "" {
		app.sourceErrorResponse(w, r, state.Err())
		return
	}

	postsByCategory := collectionutils.GroupBy(state.Data, func(p models.Post) string {
		return p.Category
	})

	categories := lo.Map(models.Categories, func(name string, _ int) category {
		return category{
			Name:  name,
			Posts: len(collectionutils.GetOrDefault(postsByCategory, name, nil)),
		}
	})

	if err := app.writeJSON(w, http.StatusOK, envelope{"categories": categories}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
