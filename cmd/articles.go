package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/lo"

	"github.com/siahsang/blogfront/internal/excerpt"
	"github.com/siahsang/blogfront/internal/store"
	"github.com/siahsang/blogfront/internal/validator"
	"github.com/siahsang/blogfront/models"
)

type articleCard struct {
	models.Article
	Excerpt string `json:"excerpt"`
}

func toArticleCard(article models.Article) articleCard {
	return articleCard{Article: article, Excerpt: excerpt.Of(article.Content)}
}

func (app *application) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := app.articles.List(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	cards := lo.Map(articles, func(a models.Article, _ int) articleCard {
		return toArticleCard(a)
	})
	if err := app.writeJSON(w, http.StatusOK, envelope{"articles": cards}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) showArticle(w http.ResponseWriter, r *http.Request) {
	article, err := app.articles.Get(r.Context(), app.readStringParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, store.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"article": article}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createArticle(w http.ResponseWriter, r *http.Request) {
	var input models.ArticleInput

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(input.Title, "title", "must be provided")
	v.CheckNotBlank(input.Author, "author", "must be provided")
	v.CheckNotBlank(input.Content, "content", "must be provided")
	checkArticleType(v, input.Type)

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	article, err := app.articles.Add(r.Context(), input)
	if err != nil {
		app.toasts.Error("No se pudo crear el artículo")
		app.internalErrorResponse(w, r, err)
		return
	}
	app.toasts.Success("Artículo creado correctamente")
	app.refreshCarousel(r.Context())

	headers := make(http.Header)
	headers.Set("Location", "/api/articles/"+article.ID)

	if err := app.writeJSON(w, http.StatusCreated, envelope{"article": article}, headers); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateArticle(w http.ResponseWriter, r *http.Request) {
	id := app.readStringParam(r, "id")

	var patch models.ArticlePatch
	if err := app.readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckOptionalNotBlank(patch.Title, "title", "must not be blank")
	v.CheckOptionalNotBlank(patch.Author, "author", "must not be blank")
	v.CheckOptionalNotBlank(patch.Content, "content", "must not be blank")
	if patch.Type != nil {
		checkArticleType(v, *patch.Type)
	}

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	article, err := app.articles.Update(r.Context(), id, patch)
	if err != nil {
		app.toasts.Error("No se pudo actualizar el artículo")
		switch {
		case errors.Is(err, store.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}
	app.toasts.Success("Artículo actualizado correctamente")
	app.refreshCarousel(r.Context())

	if err := app.writeJSON(w, http.StatusOK, envelope{"article": article}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := app.articles.Remove(r.Context(), app.readStringParam(r, "id")); err != nil {
		app.toasts.Error("No se pudo eliminar el artículo")
		app.internalErrorResponse(w, r, err)
		return
	}
	app.toasts.Success("Artículo eliminado correctamente")
	app.refreshCarousel(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) refreshCarousel(ctx context.Context) {
	articles, err := app.articles.List(ctx)
	if err != nil {
		app.logger.Error("Could not refresh carousel", "error", err)
		return
	}
	app.carousel.SetItems(articles)
}

func checkArticleType(v *validator.Validator, articleType models.ArticleType) {
	v.Check(validator.PermittedValue(articleType, models.ArticleTypes...), "type", "must be Actualidad, Deporte or Cultura")
}
