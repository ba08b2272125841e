package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/internal/utils/databaseutils"
	"github.com/siahsang/blogfront/models"
)

//go:embed schema.sql
var schemaSQL string

const postColumns = `id, title, content, author, date, category, image_url`

// Postgres is the Store backed by a posts table.
type Postgres struct {
	log         *slog.Logger
	db          *sqlx.DB
	session     databaseutils.Session
	sqlTemplate *databaseutils.SQLTemplate
	now         func() time.Time
}

func OpenPostgres(ctx context.Context, dsn string, timeout time.Duration, log *slog.Logger) (*Postgres, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, xerrors.New(err)
	}
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(10 * time.Second)

	return NewPostgres(db, timeout, log), nil
}

func NewPostgres(db *sqlx.DB, timeout time.Duration, log *slog.Logger) *Postgres {
	return &Postgres{
		log:         log,
		db:          db,
		session:     databaseutils.NewSession(db.DB, log),
		sqlTemplate: databaseutils.NewSQLTemplate(db.DB, timeout),
		now:         time.Now,
	}
}

func (p *Postgres) Init(ctx context.Context) error {
	if _, err := databaseutils.Execute(ctx, p.sqlTemplate, schemaSQL); err != nil {
		return xerrors.New(err)
	}
	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) List(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, p.sqlTemplate.Timeout)
	defer cancel()

	posts := []models.Post{}
	if err := p.db.SelectContext(ctx, &posts, `SELECT `+postColumns+` FROM posts ORDER BY id`); err != nil {
		return nil, xerrors.New(err)
	}
	return posts, nil
}

func (p *Postgres) Get(ctx context.Context, id int64) (models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, p.sqlTemplate.Timeout)
	defer cancel()

	var post models.Post
	err := p.db.GetContext(ctx, &post, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, xerrors.New(NoRecordFound)
		}
		return models.Post{}, xerrors.New(err)
	}
	return post, nil
}

func (p *Postgres) Add(ctx context.Context, input models.PostInput) (models.Post, error) {
	const insertSQL = `
		INSERT INTO posts (` + postColumns + `)
		SELECT COALESCE(MAX(id), 0) + 1, $1::text, $2::text, $3::text, $4::text, $5::text, $6::text FROM posts
		RETURNING ` + postColumns

	post, err := databaseutils.DoTransactionally(ctx, p.session, func(txCtx context.Context) (models.Post, error) {
		// max(id)+1 is only unique while no other writer can insert.
		if _, err := databaseutils.Execute(txCtx, p.sqlTemplate, `LOCK TABLE posts IN EXCLUSIVE MODE`); err != nil {
			return models.Post{}, err
		}
		return databaseutils.ExecuteSingleQuery(txCtx, p.sqlTemplate, insertSQL, scanPost,
			input.Title, input.Content, input.Author, today(p.now()), input.Category, input.ImageURL)
	})
	if err != nil {
		return models.Post{}, xerrors.New(err)
	}

	p.log.Info("Post created", "post_id", post.ID)
	return post, nil
}

func (p *Postgres) Update(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	const updateSQL = `
		UPDATE posts
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    author = COALESCE($3, author),
		    category = COALESCE($4, category),
		    image_url = COALESCE($5, image_url)
		WHERE id = $6
		RETURNING ` + postColumns

	post, err := databaseutils.ExecuteSingleQuery(ctx, p.sqlTemplate, updateSQL, scanPost,
		patch.Title, patch.Content, patch.Author, patch.Category, patch.ImageURL, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, xerrors.New(NoRecordFound)
		}
		return models.Post{}, xerrors.New(err)
	}

	p.log.Info("Post updated", "post_id", id)
	return post, nil
}

func (p *Postgres) Remove(ctx context.Context, id int64) error {
	affected, err := databaseutils.Execute(ctx, p.sqlTemplate, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return xerrors.New(err)
	}
	if affected > 0 {
		p.log.Info("Post removed", "post_id", id)
	}
	return nil
}

func (p *Postgres) Replace(ctx context.Context, posts []models.Post) error {
	const insertSQL = `INSERT INTO posts (` + postColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	err := p.session.DoTransactionally(ctx, func(txCtx context.Context) error {
		if _, err := databaseutils.Execute(txCtx, p.sqlTemplate, `DELETE FROM posts`); err != nil {
			return err
		}
		for _, post := range posts {
			if _, err := databaseutils.Execute(txCtx, p.sqlTemplate, insertSQL,
				post.ID, post.Title, post.Content, post.Author, post.Date, post.Category, post.ImageURL); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return xerrors.New(err)
	}
	return nil
}

func scanPost(rows *sql.Rows) (models.Post, error) {
	var post models.Post
	if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Author, &post.Date, &post.Category, &post.ImageURL); err != nil {
		return models.Post{}, xerrors.New(err)
	}
	return post, nil
}
