package web

import (
	"context"
	"net/http"
)

type ContextKey string

func AddValueToContext(r *http.Request, key ContextKey, value any) *http.Request {
	ctx := context.WithValue(r.Context(), key, value)
	return r.WithContext(ctx)
}

func GetValueFromContext[T any](r *http.Request, key ContextKey) (T, bool) {
	tVal, ok := r.Context().Value(key).(T)
	return tVal, ok
}
