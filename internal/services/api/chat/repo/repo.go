// Package repo provides postgres access for chat rooms and messages
package repo

import (
	"context"
	"errors"
	"time"

	"reclaim/internal/modkit/repokit"
	perr "reclaim/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// RoomRecord is a stored chat room
type RoomRecord struct {
	ID          string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}

// MessageRecord is a stored chat message
type MessageRecord struct {
	ID        string
	RoomID    string
	UserID    string
	Body      string
	Pinned    bool
	CreatedAt time.Time
}

// Repo is the minimal persistence surface for chat
type Repo interface {
	ListRooms(ctx context.Context) ([]RoomRecord, error)
	GetRoom(ctx context.Context, roomID string) (RoomRecord, error)
	InsertRoom(ctx context.Context, rec RoomRecord) error

	ListMessages(ctx context.Context, roomID string) ([]MessageRecord, error)
	InsertMessage(ctx context.Context, rec MessageRecord) error
	SetPinned(ctx context.Context, roomID, messageID string, pinned bool) error
	DeleteMessage(ctx context.Context, roomID, messageID string) error

	IsBanned(ctx context.Context, roomID, userID string) (bool, error)
	InsertBan(ctx context.Context, roomID, userID, bannedBy string) error

	IsModerator(ctx context.Context, userID string) (bool, error)
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

func (r *queries) ListRooms(ctx context.Context) ([]RoomRecord, error) {
	const sql = `
select id, name, description, created_by, created_at
from chat_rooms
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "room list")
	}
	defer rows.Close()

	var out []RoomRecord
	for rows.Next() {
		var rec RoomRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.CreatedBy, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *queries) GetRoom(ctx context.Context, roomID string) (RoomRecord, error) {
	const sql = `
select id, name, description, created_by, created_at
from chat_rooms
where id = $1
`
	var rec RoomRecord
	err := r.q.QueryRow(ctx, sql, roomID).
		Scan(&rec.ID, &rec.Name, &rec.Description, &rec.CreatedBy, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RoomRecord{}, perr.NotFoundf("room %s", roomID)
		}
		return RoomRecord{}, perr.FromPostgres(err, "room get")
	}
	return rec, nil
}

func (r *queries) InsertRoom(ctx context.Context, rec RoomRecord) error {
	const sql = `
insert into chat_rooms (id, name, description, created_by, created_at)
values ($1, $2, $3, $4, now())
`
	if _, err := r.q.Exec(ctx, sql, rec.ID, rec.Name, rec.Description, rec.CreatedBy); err != nil {
		return perr.FromPostgres(err, "room insert")
	}
	return nil
}

// ListMessages surfaces pinned messages first, then chronological order
func (r *queries) ListMessages(ctx context.Context, roomID string) ([]MessageRecord, error) {
	const sql = `
select id, room_id, user_id, body, pinned, created_at
from chat_messages
where room_id = $1
order by pinned desc, created_at asc
`
	rows, err := r.q.Query(ctx, sql, roomID)
	if err != nil {
		return nil, perr.FromPostgres(err, "message list")
	}
	defer rows.Close()

	var out []MessageRecord
	for rows.Next() {
		var rec MessageRecord
		if err := rows.Scan(&rec.ID, &rec.RoomID, &rec.UserID, &rec.Body, &rec.Pinned, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *queries) InsertMessage(ctx context.Context, rec MessageRecord) error {
	const sql = `
insert into chat_messages (id, room_id, user_id, body, pinned, created_at)
values ($1, $2, $3, $4, false, now())
`
	if _, err := r.q.Exec(ctx, sql, rec.ID, rec.RoomID, rec.UserID, rec.Body); err != nil {
		return perr.FromPostgres(err, "message insert")
	}
	return nil
}

func (r *queries) SetPinned(ctx context.Context, roomID, messageID string, pinned bool) error {
	const sql = `
update chat_messages set pinned = $3
where room_id = $1 and id = $2
`
	tag, err := r.q.Exec(ctx, sql, roomID, messageID, pinned)
	if err != nil {
		return perr.FromPostgres(err, "message pin")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("message %s in room %s", messageID, roomID)
	}
	return nil
}

func (r *queries) DeleteMessage(ctx context.Context, roomID, messageID string) error {
	const sql = `
delete from chat_messages
where room_id = $1 and id = $2
`
	tag, err := r.q.Exec(ctx, sql, roomID, messageID)
	if err != nil {
		return perr.FromPostgres(err, "message delete")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("message %s in room %s", messageID, roomID)
	}
	return nil
}

func (r *queries) IsBanned(ctx context.Context, roomID, userID string) (bool, error) {
	const sql = `
select exists(select 1 from chat_bans where room_id = $1 and user_id = $2)
`
	var banned bool
	if err := r.q.QueryRow(ctx, sql, roomID, userID).Scan(&banned); err != nil {
		return false, perr.FromPostgres(err, "ban check")
	}
	return banned, nil
}

func (r *queries) InsertBan(ctx context.Context, roomID, userID, bannedBy string) error {
	const sql = `
insert into chat_bans (room_id, user_id, banned_by, banned_at)
values ($1, $2, $3, now())
on conflict (room_id, user_id) do nothing
`
	if _, err := r.q.Exec(ctx, sql, roomID, userID, bannedBy); err != nil {
		return perr.FromPostgres(err, "ban insert")
	}
	return nil
}

func (r *queries) IsModerator(ctx context.Context, userID string) (bool, error) {
	const sql = `
select coalesce(is_moderator, false) from users where id = $1
`
	var mod bool
	err := r.q.QueryRow(ctx, sql, userID).Scan(&mod)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, perr.FromPostgres(err, "moderator check")
	}
	return mod, nil
}
