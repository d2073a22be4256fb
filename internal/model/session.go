package model

import "time"

// Session models an entry in the `sessions` table.  Each session belongs
// to an admin and carries an expiry.  The cookie value itself is not
// stored; only its SHA-256 hash, so a leaked table cannot be replayed
// as live sessions.
//
// Fields:
//  ID        – primary key identifier.
//  AdminID   – owner of the session.
//  TokenHash – SHA-256 hex digest of the cookie token.
//  ExpiresAt – when the session stops being valid.
//  CreatedAt – timestamp of login.
type Session struct {
    ID        uint64    // sessions.id
    AdminID   uint64    // sessions.admin_id
    TokenHash string    // sessions.token_hash
    ExpiresAt time.Time // sessions.expires_at
    CreatedAt time.Time // sessions.created_at
}
