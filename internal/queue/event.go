// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after a booking row is durably inserted.
// It carries everything the notification consumer needs to compose the
// staff alert and the customer confirmation without querying the database.
type BookingCreatedEvent struct {
    BookingID   uint64 `json:"booking_id"`
    FirstName   string `json:"first_name"`
    LastName    string `json:"last_name"`
    Email       string `json:"email"`
    ServiceType string `json:"service_type"`
    BookingDate string `json:"booking_date"`
    Message     string `json:"message"`
    CreatedAt   string `json:"created_at"`
}
