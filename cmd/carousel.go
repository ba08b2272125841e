package main

import "net/http"

func (app *application) showCarousel(w http.ResponseWriter, r *http.Request) {
	app.writeSlide(w, r)
}

func (app *application) nextSlide(w http.ResponseWriter, r *http.Request) {
	app.carousel.Next()
	app.writeSlide(w, r)
}

func (app *application) prevSlide(w http.ResponseWriter, r *http.Request) {
	app.carousel.Prev()
	app.writeSlide(w, r)
}

func (app *application) writeSlide(w http.ResponseWriter, r *http.Request) {
	article, index, ok := app.carousel.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	data := envelope{
		"index":   index,
		"total":   app.carousel.Len(),
		"article": toArticleCard(article),
	}
	if err := app.writeJSON(w, http.StatusOK, data, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
