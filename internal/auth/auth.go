package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mdobak/go-xerrors"
	"golang.org/x/crypto/bcrypt"

	"github.com/siahsang/blogfront/internal/web"
)

const (
	EditorCtxKey web.ContextKey = "editor"
	TokenCtxKey  web.ContextKey = "token"

	DefaultTokenTTL = 24 * time.Hour
)

var (
	NotAuthenticatedEditor = xerrors.Message("Not authenticated editor")
	ErrInvalidCredentials  = xerrors.Message("Invalid username or password")
	ErrInvalidToken        = xerrors.Message("Invalid or expired token")
)

type Config struct {
	Username     string
	PasswordHash string
	Secret       string
	TokenTTL     time.Duration
}

type Auth struct {
	username     string
	passwordHash []byte
	secret       []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

func New(cfg Config) *Auth {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Auth{
		username:     cfg.Username,
		passwordHash: []byte(cfg.PasswordHash),
		secret:       []byte(cfg.Secret),
		tokenTTL:     ttl,
		now:          time.Now,
	}
}

// Enabled reports whether an editor account is configured. Without one the
// mutating routes are open.
func (auth *Auth) Enabled() bool {
	return auth.username != "" && len(auth.passwordHash) > 0 && len(auth.secret) > 0
}

func HashPassword(plainTextPassword string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), 12)
	if err != nil {
		return "", xerrors.New(err)
	}

	return string(hashedPassword), nil
}

func (auth *Auth) isPasswordMatch(plainTextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(auth.passwordHash, []byte(plainTextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, xerrors.New(err)
	}

	return true, nil
}

// Login checks the credentials and returns the editor with a fresh token.
func (auth *Auth) Login(username, password string) (*Editor, error) {
	if !auth.Enabled() || username != auth.username {
		return nil, xerrors.New(ErrInvalidCredentials)
	}

	ok, err := auth.isPasswordMatch(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.New(ErrInvalidCredentials)
	}

	token, err := auth.generateToken(username)
	if err != nil {
		return nil, err
	}

	return &Editor{Username: username, Token: token}, nil
}

func (auth *Auth) generateToken(username string) (string, error) {
	now := auth.now()
	claim := EditorClaim{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(auth.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)
	signedString, err := token.SignedString(auth.secret)
	if err != nil {
		return "", xerrors.New(err)
	}
	return signedString, nil
}

func (auth *Auth) Authenticate(tokenString string) (*Editor, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &EditorClaim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, xerrors.New("unexpected signing method")
		}
		return auth.secret, nil
	}, jwt.WithTimeFunc(auth.now))

	if err != nil {
		return nil, xerrors.Newf("%w: %v", ErrInvalidToken, err)
	}

	claim, ok := parsedToken.Claims.(*EditorClaim)
	if !ok || !parsedToken.Valid || claim.Username != auth.username {
		return nil, xerrors.New(ErrInvalidToken)
	}

	return &Editor{Username: claim.Username, Token: tokenString}, nil
}

func (auth *Auth) GetAuthenticatedEditor(r *http.Request) (*Editor, error) {
	editor, ok := web.GetValueFromContext[*Editor](r, EditorCtxKey)
	if !ok {
		return nil, NotAuthenticatedEditor
	}

	return editor, nil
}

func (auth *Auth) SetAuthenticatedEditor(r *http.Request, editor *Editor) *http.Request {
	r = web.AddValueToContext(r, TokenCtxKey, editor.Token)
	return web.AddValueToContext(r, EditorCtxKey, editor)
}

func (auth *Auth) IsEditorAuthenticated(r *http.Request) bool {
	_, err := auth.GetAuthenticatedEditor(r)
	return err == nil
}
