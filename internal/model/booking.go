package model

import "time"

// Booking represents a row in the `bookings` table.  Optional columns are
// pointers so that NULL survives the round trip; callers that need a value
// for display or comparison go through the Effective* accessors below
// instead of reading Status or BookingDate directly.
//
// Fields:
//  ID          – primary key identifier.
//  FirstName   – customer first name.
//  LastName    – customer last name (nullable).
//  Email       – customer contact email.
//  PhoneNumber – customer contact phone.
//  Address     – service address (nullable).
//  ServiceType – requested service (e.g. "Deep Cleaning").
//  Message     – free-form customer note (nullable).
//  BookingDate – requested service date (nullable).
//  Status      – workflow status (nullable; NULL means never touched by staff).
//  CreatedAt   – timestamp the booking was submitted.
type Booking struct {
    ID          uint64     // bookings.booking_id
    FirstName   string     // bookings.first_name
    LastName    *string    // bookings.last_name (nullable)
    Email       string     // bookings.email
    PhoneNumber string     // bookings.phone_number
    Address     *string    // bookings.address (nullable)
    ServiceType string     // bookings.service_type
    Message     *string    // bookings.message (nullable)
    BookingDate *time.Time // bookings.booking_date (nullable)
    Status      *string    // bookings.status (nullable)
    CreatedAt   time.Time  // bookings.created_at
}

// Workflow statuses staff can assign to a booking.  Any status may move to
// any other; there is no transition graph.
const (
    StatusPending    = "Pending"
    StatusInProgress = "In Progress"
    StatusCompleted  = "Completed"
    StatusCancelled  = "Cancelled"
)

// Statuses lists every value accepted by the status update endpoint.
var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// ValidStatus reports whether s is one of the four allowed status literals.
// The comparison is exact; no trimming or case folding is applied.
func ValidStatus(s string) bool {
    for _, v := range Statuses {
        if s == v {
            return true
        }
    }
    return false
}

// EffectiveStatus returns the status used for every comparison and display:
// the stored value when present, otherwise Pending.  Rows created by the
// public form carry NULL until staff first touch them.
func (b Booking) EffectiveStatus() string {
    if b.Status == nil || *b.Status == "" {
        return StatusPending
    }
    return *b.Status
}

// EffectiveDate returns the date used for sorting and the calendar-day
// filter: the requested booking date when present, otherwise the moment
// the booking was submitted.
func (b Booking) EffectiveDate() time.Time {
    if b.BookingDate != nil {
        return *b.BookingDate
    }
    return b.CreatedAt
}
