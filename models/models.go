package models

import "time"

const DateLayout = "2006-01-02"

var Categories = []string{
	"Tecnología",
	"Desarrollo Web",
	"Programación",
	"Diseño UI/UX",
	"Base de Datos",
	"DevOps",
	"Inteligencia Artificial",
	"Otros",
}

type Post struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Content  string `json:"content" db:"content"`
	Author   string `json:"author" db:"author"`
	Date     string `json:"date" db:"date"`
	Category string `json:"category,omitempty" db:"category"`
	ImageURL string `json:"imageUrl,omitempty" db:"image_url"`
}

// PostInput is a post as submitted by the create form, before the store
// assigns id and date.
type PostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// PostPatch carries the fields of an edit. Nil fields are left untouched.
type PostPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Author   *string `json:"author,omitempty"`
	Category *string `json:"category,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (p Post) Apply(patch PostPatch) Post {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	return p
}

type ArticleType string

const (
	ArticleTypeActualidad ArticleType = "Actualidad"
	ArticleTypeDeporte    ArticleType = "Deporte"
	ArticleTypeCultura    ArticleType = "Cultura"
)

var ArticleTypes = []ArticleType{ArticleTypeActualidad, ArticleTypeDeporte, ArticleTypeCultura}

type Article struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Author    string      `json:"author"`
	Content   string      `json:"content"`
	Type      ArticleType `json:"type"`
	ImageURL  string      `json:"imageUrl"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type ArticleInput struct {
	Title    string      `json:"title"`
	Author   string      `json:"author"`
	Content  string      `json:"content"`
	Type     ArticleType `json:"type"`
	ImageURL string      `json:"imageUrl"`
}

type ArticlePatch struct {
	Title    *string      `json:"title,omitempty"`
	Author   *string      `json:"author,omitempty"`
	Content  *string      `json:"content,omitempty"`
	Type     *ArticleType `json:"type,omitempty"`
	ImageURL *string      `json:"imageUrl,omitempty"`
}

func (a Article) Apply(patch ArticlePatch) Article {
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Author != nil {
		a.Author = *patch.Author
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.ImageURL != nil {
		a.ImageURL = *patch.ImageURL
	}
	return a
}

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

type Toast struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      ToastKind `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
