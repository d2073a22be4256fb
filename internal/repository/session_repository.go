package repository

import (
	"context"
	"database/sql"
	"time"
)

// SessionRepo persists/validates admin sessions (single 'token_hash' column).
// Sessions live in the database so they survive process restarts and so
// multiple serving processes agree on who is logged in.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Create inserts a session row for an admin.  Login handlers must wait for
// this insert before acknowledging success, otherwise the client could act
// on a session that is not durable yet.
func (r *SessionRepo) Create(ctx context.Context, adminID uint64, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO sessions (admin_id, token_hash, expires_at) VALUES (?,?,?)",
		adminID, tokenHash, exp)
	return err
}

// Validate returns the owning adminID if a non-expired session exists for
// the hash.  An expired row is deleted on sight and reported as missing,
// so expiry behaves exactly like logout.
func (r *SessionRepo) Validate(ctx context.Context, tokenHash string) (uint64, error) {
	var (
		adminID   uint64
		expiresAt time.Time
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT admin_id, expires_at FROM sessions WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&adminID, &expiresAt)
	if err != nil {
		return 0, err
	}
	if time.Now().UTC().After(expiresAt) {
		_ = r.DeleteByHash(ctx, tokenHash)
		return 0, sql.ErrNoRows
	}
	return adminID, nil
}

// DeleteByHash removes a session row (logout).  Deleting a hash that no
// longer exists is not an error.
func (r *SessionRepo) DeleteByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM sessions WHERE token_hash=?", tokenHash)
	return err
}

// DeleteExpired purges every session past its expiry.  Called periodically
// from main as cheap housekeeping; Validate already treats stale rows as
// missing, so this only reclaims space.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC())
	return err
}
