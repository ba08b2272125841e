package main

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthz", app.healthcheck)
	router.HandlerFunc(http.MethodPost, "/api/login", app.login)

	router.HandlerFunc(http.MethodGet, "/api/posts", app.listPosts)
	router.HandlerFunc(http.MethodGet, "/api/posts/:id", app.showPost)
	router.HandlerFunc(http.MethodGet, "/api/categories", app.listCategories)
	router.HandlerFunc(http.MethodGet, "/api/feed", app.showFeed)

	router.HandlerFunc(http.MethodGet, "/api/articles", app.listArticles)
	router.HandlerFunc(http.MethodGet, "/api/articles/:id", app.showArticle)

	router.HandlerFunc(http.MethodGet, "/api/carousel", app.showCarousel)
	router.HandlerFunc(http.MethodPost, "/api/carousel/next", app.nextSlide)
	router.HandlerFunc(http.MethodPost, "/api/carousel/prev", app.prevSlide)

	router.HandlerFunc(http.MethodGet, "/api/toasts", app.listToasts)
	router.HandlerFunc(http.MethodDelete, "/api/toasts/:id", app.dismissToast)

	router.HandlerFunc(http.MethodGet, "/api/preferences/dark-mode", app.showDarkMode)
	router.HandlerFunc(http.MethodPost, "/api/preferences/dark-mode/toggle", app.toggleDarkMode)

	// Editor only when an editor account is configured
	router.HandlerFunc(http.MethodPost, "/api/posts", app.requireEditor(app.createPost))
	router.HandlerFunc(http.MethodPut, "/api/posts/:id", app.requireEditor(app.updatePost))
	router.HandlerFunc(http.MethodDelete, "/api/posts/:id", app.requireEditor(app.deletePost))
	router.HandlerFunc(http.MethodPost, "/api/articles", app.requireEditor(app.createArticle))
	router.HandlerFunc(http.MethodPut, "/api/articles/:id", app.requireEditor(app.updateArticle))
	router.HandlerFunc(http.MethodDelete, "/api/articles/:id", app.requireEditor(app.deleteArticle))

	return app.recoverPanic(middleware.RequestID(middleware.RealIP(app.logRequest(app.authenticate(router)))))
}
