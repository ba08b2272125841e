package main

import "net/http"

func (app *application) listToasts(w http.ResponseWriter, r *http.Request) {
	if err := app.writeJSON(w, http.StatusOK, envelope{"toasts": app.toasts.Active()}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) dismissToast(w http.ResponseWriter, r *http.Request) {
	if !app.toasts.Dismiss(app.readStringParam(r, "id")) {
		app.notFoundResponse(w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
