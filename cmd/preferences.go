package main

import "net/http"

func (app *application) showDarkMode(w http.ResponseWriter, r *http.Request) {
	if err := app.writeJSON(w, http.StatusOK, envelope{"isDarkMode": app.darkMode.Enabled()}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) toggleDarkMode(w http.ResponseWriter, r *http.Request) {
	enabled, err := app.darkMode.Toggle(r.Context())
	if err != nil {
		app.toasts.Error("No se pudo guardar la preferencia")
		app.internalErrorResponse(w, r, err)
		return
	}

	if enabled {
		app.toasts.Info("Modo oscuro activado")
	} else {
		app.toasts.Info("Modo oscuro desactivado")
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"isDarkMode": enabled}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
