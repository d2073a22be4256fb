package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/teeman-cleaning/booking-service/internal/model"
)

// AdminRepo reads staff accounts from the 'admins' table.  Accounts are
// provisioned out of band, so there is no Create.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// GetByUsername fetches an admin by normalized username.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.Admin, error) {
	username = strings.TrimSpace(username)
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT admin_id,username,password_hash FROM admins WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Username, &a.PasswordHash)
	return a, err
}
