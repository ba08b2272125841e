package main

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/siahsang/blogfront/internal/excerpt"
	"github.com/siahsang/blogfront/internal/fetch"
	"github.com/siahsang/blogfront/internal/filter"
	"github.com/siahsang/blogfront/internal/utils/stringutils"
	"github.com/siahsang/blogfront/internal/validator"
	"github.com/siahsang/blogfront/models"
)

type postCard struct {
	models.Post
	Excerpt string `json:"excerpt"`
}

func toPostCard(post models.Post) postCard {
	return postCard{Post: post, Excerpt: excerpt.Of(post.Content)}
}

func (app *application) listPosts(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	query := r.URL.Query()
	category := app.readString(query, "category", "")

	limit := app.readInt(query, "limit", 20, v)
	offset := app.readInt(query, "offset", 0, v)

	filters := filter.NewFilter(limit, offset)

	filter.ValidateFilters(filters, v)
	if category != "" {
		checkCategory(v, category)
	}
	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	state := fetch.Get[[]models.Post](r.Context(), app.source, "/posts")
	if state.Error != "" {
		app.sourceErrorResponse(w, r, state.Err())
		return
	}

	posts := state.Data
	if category != "" {
		posts = lo.Filter(posts, func(p models.Post, _ int) bool {
			return p.Category == category
		})
	}

	page, metadata := filter.Paginate(posts, filters)
	if err := app.writeJSON(w, http.StatusOK, envelope{"posts": lo.Map(page, func(p models.Post, _ int) postCard {
		return toPostCard(p)
	}), "metadata": metadata}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) showPost(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	state := fetch.Get[models.Post](r.Context(), app.source, postPath(id))
	if state.Error != "" {
		app.sourceErrorResponse(w, r, state.Err())
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"post": state.Data}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createPost(w http.ResponseWriter, r *http.Request) {
	var input models.PostInput

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(input.Title, "title", "must be provided")
	v.CheckNotBlank(input.Content, "content", "must be provided")
	v.CheckNotBlank(input.Author, "author", "must be provided")
	if input.Category != "" {
		checkCategory(v, input.Category)
	}

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	post, err := app.source.CreatePost(r.Context(), input)
	if err != nil {
		app.toasts.Error("No se pudo crear el post")
		app.sourceErrorResponse(w, r, err)
		return
	}
	app.toasts.Success("Post creado correctamente")

	headers := make(http.Header)
	headers.Set("Location", "/api"+postPath(post.ID))

	if err := app.writeJSON(w, http.StatusCreated, envelope{"post": post}, headers); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var patch models.PostPatch
	if err := app.readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckOptionalNotBlank(patch.Title, "title", "must not be blank")
	v.CheckOptionalNotBlank(patch.Content, "content", "must not be blank")
	v.CheckOptionalNotBlank(patch.Author, "author", "must not be blank")
	if patch.Category != nil && *patch.Category != "" {
		checkCategory(v, *patch.Category)
	}

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	post, err := app.source.UpdatePost(r.Context(), id, patch)
	if err != nil {
		app.toasts.Error("No se pudo actualizar el post")
		app.sourceErrorResponse(w, r, err)
		return
	}
	app.toasts.Success("Post actualizado correctamente")

	if err := app.writeJSON(w, http.StatusOK, envelope{"post": post}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	if err := app.source.DeletePost(r.Context(), id); err != nil {
		app.toasts.Error("No se pudo eliminar el post")
		app.sourceErrorResponse(w, r, err)
		return
	}
	app.toasts.Success("Post eliminado correctamente")

	w.WriteHeader(http.StatusNoContent)
}

func postPath(id int64) string {
	return "/posts/" + stringutils.ToString(id)
}

func checkCategory(v *validator.Validator, category string) {
	v.Check(validator.PermittedValue(category, models.Categories...), "category", "must be one of the known categories")
}
