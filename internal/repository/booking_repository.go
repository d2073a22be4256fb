package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/teeman-cleaning/booking-service/internal/model"
)

// Every read path compares against the same coalesced expressions.  A row
// whose status column is NULL has never been touched by staff and counts
// as Pending; a row without a booking_date sorts by its submission time.
// Keeping these as shared constants stops the list endpoint and the
// dashboard from drifting apart.
const (
	effectiveStatus = "IFNULL(status, 'Pending')"
	effectiveDate   = "COALESCE(booking_date, created_at)"
)

const bookingColumns = "booking_id, first_name, last_name, email, phone_number, address, service_type, message, booking_date, status, created_at"

// BookingFilter defines the optional filters for listing bookings.  Unset
// fields are no-ops; set fields are AND-composed.  Limit caps the result
// count when positive.
type BookingFilter struct {
	Search  string // case-insensitive substring over name/email/phone
	Service string // exact service_type match
	Status  string // compared against the effective status
	Date    string // calendar day (YYYY-MM-DD) against the effective date
	Limit   int    // <= 0 means no cap
}

// NewBooking carries the fields accepted from the public form.  Optional
// fields are pointers so an omitted value becomes NULL in storage.
type NewBooking struct {
	FirstName   string
	LastName    *string
	Email       string
	PhoneNumber string
	Address     *string
	ServiceType string
	Message     *string
	BookingDate string
}

// DashboardSummary aggregates the three independent counts shown on the
// admin dashboard.  Pending and Completed are not mutually exclusive
// buckets of Total; each count runs its own query.
type DashboardSummary struct {
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	CompletedBookings int64 `json:"completedBookings"`
}

type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// List returns bookings matching the filter, most recent effective date
// first, ties broken by booking_id descending.  Every filter value is a
// bound parameter; nothing from the caller is ever spliced into the query
// text.
func (r *BookingRepo) List(ctx context.Context, f BookingFilter) ([]model.Booking, error) {
	where := []string{}
	args := []any{}

	if f.Search != "" {
		where = append(where,
			"(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone_number) LIKE ?)")
		term := "%" + strings.ToLower(f.Search) + "%"
		args = append(args, term, term, term, term)
	}
	if f.Service != "" {
		where = append(where, "service_type = ?")
		args = append(args, f.Service)
	}
	if f.Status != "" {
		where = append(where, effectiveStatus+" = ?")
		args = append(args, f.Status)
	}
	if f.Date != "" {
		where = append(where, "DATE("+effectiveDate+") = ?")
		args = append(args, f.Date)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	query := "SELECT " + bookingColumns + " FROM bookings WHERE " + cond +
		" ORDER BY " + effectiveDate + " DESC, booking_id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0, 16)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single booking or ErrNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE booking_id=? LIMIT 1", id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrNotFound
	}
	return b, err
}

// Create inserts a booking and returns its ID.  The status column is left
// NULL: new rows are Pending only through the read-time coalescing rule,
// never through a written default.
func (r *BookingRepo) Create(ctx context.Context, nb NewBooking) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings (first_name, last_name, email, phone_number, address, service_type, message, booking_date, created_at)
		 VALUES (?,?,?,?,?,?,?,?,NOW())`,
		nb.FirstName, nb.LastName, nb.Email, nb.PhoneNumber, nb.Address, nb.ServiceType, nb.Message, nb.BookingDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateStatus sets the booking's status to exactly the given value.
// Callers validate the value first; this method only reports ErrNotFound
// when no row carries the id.  Setting the same status twice succeeds
// both times.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE booking_id=?", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary computes the dashboard counts.  Three separate queries, all
// using the shared effective-status expression, so a NULL-status row is
// counted as Pending here exactly as it is matched by List.
func (r *BookingRepo) Summary(ctx context.Context) (DashboardSummary, error) {
	var s DashboardSummary
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings").Scan(&s.TotalBookings); err != nil {
		return DashboardSummary{}, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE "+effectiveStatus+" = ?",
		model.StatusPending).Scan(&s.PendingBookings); err != nil {
		return DashboardSummary{}, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE status = ?",
		model.StatusCompleted).Scan(&s.CompletedBookings); err != nil {
		return DashboardSummary{}, err
	}
	return s, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanBooking(s scanner) (model.Booking, error) {
	var (
		b           model.Booking
		lastName    sql.NullString
		address     sql.NullString
		message     sql.NullString
		bookingDate sql.NullTime
		status      sql.NullString
	)
	err := s.Scan(&b.ID, &b.FirstName, &lastName, &b.Email, &b.PhoneNumber,
		&address, &b.ServiceType, &message, &bookingDate, &status, &b.CreatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	if lastName.Valid {
		b.LastName = &lastName.String
	}
	if address.Valid {
		b.Address = &address.String
	}
	if message.Valid {
		b.Message = &message.String
	}
	if bookingDate.Valid {
		b.BookingDate = &bookingDate.Time
	}
	if status.Valid && status.String != "" {
		b.Status = &status.String
	}
	return b, nil
}
