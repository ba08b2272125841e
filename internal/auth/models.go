package auth

import "github.com/golang-jwt/jwt/v5"

// Editor is the single account allowed to mutate content.
type Editor struct {
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

type EditorClaim struct {
	Username string `json:"username"`

	jwt.RegisteredClaims
}
