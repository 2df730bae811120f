// Package repo provides postgres access for community posts
package repo

import (
	"context"
	"errors"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// PostRecord is a stored post with derived counters
type PostRecord struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	Likes     int
	Liked     bool
	Comments  int
	CreatedAt time.Time
}

// CommentRecord is a stored comment
type CommentRecord struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

// Repo is the minimal persistence surface for community
type Repo interface {
	ListPosts(ctx context.Context, viewerID string) ([]PostRecord, error)
	GetPost(ctx context.Context, viewerID, postID string) (PostRecord, error)
	InsertPost(ctx context.Context, rec PostRecord) error

	InsertLike(ctx context.Context, postID, userID string) (bool, error)
	DeleteLike(ctx context.Context, postID, userID string) (bool, error)
	HasLiked(ctx context.Context, postID, userID string) (bool, error)
	CountLikes(ctx context.Context, postID string) (int, error)

	ListComments(ctx context.Context, postID string) ([]CommentRecord, error)
	InsertComment(ctx context.Context, rec CommentRecord) error
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const postCols = `
p.id, p.title, p.content, p.author_id, p.created_at,
(select count(1) from post_likes l where l.post_id = p.id) as likes,
exists(select 1 from post_likes l where l.post_id = p.id and l.user_id = $1) as liked,
(select count(1) from post_comments c where c.post_id = p.id) as comments
`

func scanPost(row interface{ Scan(...any) error }, rec *PostRecord) error {
	return row.Scan(
		&rec.ID, &rec.Title, &rec.Content, &rec.AuthorID, &rec.CreatedAt,
		&rec.Likes, &rec.Liked, &rec.Comments,
	)
}

func (r *queries) ListPosts(ctx context.Context, viewerID string) ([]PostRecord, error) {
	sql := `select ` + postCols + ` from posts p order by p.created_at desc limit 200`
	rows, err := r.q.Query(ctx, sql, viewerID)
	if err != nil {
		return nil, perr.FromPostgres(err, "post list")
	}
	defer rows.Close()

	var out []PostRecord
	for rows.Next() {
		var rec PostRecord
		if err := scanPost(rows, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *queries) GetPost(ctx context.Context, viewerID, postID string) (PostRecord, error) {
	sql := `select ` + postCols + ` from posts p where p.id = $2`
	var rec PostRecord
	err := scanPost(r.q.QueryRow(ctx, sql, viewerID, postID), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PostRecord{}, perr.NotFoundf("post %s", postID)
		}
		return PostRecord{}, perr.FromPostgres(err, "post get")
	}
	return rec, nil
}

func (r *queries) InsertPost(ctx context.Context, rec PostRecord) error {
	const sql = `
insert into posts (id, title, content, author_id, created_at)
values ($1, $2, $3, $4, now())
`
	if _, err := r.q.Exec(ctx, sql, rec.ID, rec.Title, rec.Content, rec.AuthorID); err != nil {
		return perr.FromPostgres(err, "post insert")
	}
	return nil
}

func (r *queries) InsertLike(ctx context.Context, postID, userID string) (bool, error) {
	const sql = `
insert into post_likes (post_id, user_id, created_at)
values ($1, $2, now())
on conflict (post_id, user_id) do nothing
`
	tag, err := r.q.Exec(ctx, sql, postID, userID)
	if err != nil {
		return false, perr.FromPostgres(err, "like insert")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) DeleteLike(ctx context.Context, postID, userID string) (bool, error) {
	const sql = `
delete from post_likes where post_id = $1 and user_id = $2
`
	tag, err := r.q.Exec(ctx, sql, postID, userID)
	if err != nil {
		return false, perr.FromPostgres(err, "like delete")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	const sql = `
select exists(select 1 from post_likes where post_id = $1 and user_id = $2)
`
	var liked bool
	if err := r.q.QueryRow(ctx, sql, postID, userID).Scan(&liked); err != nil {
		return false, perr.FromPostgres(err, "like check")
	}
	return liked, nil
}

func (r *queries) CountLikes(ctx context.Context, postID string) (int, error) {
	const sql = `
select count(1) from post_likes where post_id = $1
`
	var n int
	if err := r.q.QueryRow(ctx, sql, postID).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "like count")
	}
	return n, nil
}

func (r *queries) ListComments(ctx context.Context, postID string) ([]CommentRecord, error) {
	const sql = `
select id, post_id, author_id, content, created_at
from post_comments
where post_id = $1
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql, postID)
	if err != nil {
		return nil, perr.FromPostgres(err, "comment list")
	}
	defer rows.Close()

	var out []CommentRecord
	for rows.Next() {
		var rec CommentRecord
		if err := rows.Scan(&rec.ID, &rec.PostID, &rec.AuthorID, &rec.Content, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *queries) InsertComment(ctx context.Context, rec CommentRecord) error {
	const sql = `
insert into post_comments (id, post_id, author_id, content, created_at)
values ($1, $2, $3, $4, now())
`
	if _, err := r.q.Exec(ctx, sql, rec.ID, rec.PostID, rec.AuthorID, rec.Content); err != nil {
		return perr.FromPostgres(err, "comment insert")
	}
	return nil
}
