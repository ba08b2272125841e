package main

import (
	"errors"
	"net/http"

	"github.com/siahsang/blogfront/internal/auth"
	"github.com/siahsang/blogfront/internal/validator"
)

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	if !app.auth.Enabled() {
		app.notFoundResponse(w, r)
		return
	}

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	v := validator.New()
	v.CheckNotBlank(input.Username, "username", "must be provided")
	v.CheckNotBlank(input.Password, "password", "must be provided")

	if !v.IsValid() {
		app.badRequestResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	editor, err := app.auth.Login(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			app.invalidCredentialsResponse(w, r, err)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"editor": editor}, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}
