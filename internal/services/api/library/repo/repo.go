// Package repo provides postgres access for library books
package repo

import (
	"context"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"
)

// Record is a stored book entry
type Record struct {
	ID         string
	Title      string
	Author     string
	PDFURL     string
	CoverURL   string
	UploadedBy string
	CreatedAt  time.Time
}

// Repo is the minimal persistence surface for the library
type Repo interface {
	List(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, rec Record) error
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

func (r *queries) List(ctx context.Context) ([]Record, error) {
	const sql = `
select id, title, author, pdf_url, cover_url, uploaded_by, created_at
from books
order by title asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "book list")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Author, &rec.PDFURL, &rec.CoverURL, &rec.UploadedBy, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *queries) Insert(ctx context.Context, rec Record) error {
	const sql = `
insert into books (id, title, author, pdf_url, cover_url, uploaded_by, created_at)
values ($1, $2, $3, $4, $5, $6, now())
`
	if _, err := r.q.Exec(ctx, sql, rec.ID, rec.Title, rec.Author, rec.PDFURL, rec.CoverURL, rec.UploadedBy); err != nil {
		return perr.FromPostgres(err, "book insert")
	}
	return nil
}
