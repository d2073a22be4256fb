package model

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestEffectiveStatus(t *testing.T) {
	cases := []struct {
		name   string
		status *string
		want   string
	}{
		{"nil status is pending", nil, StatusPending},
		{"empty status is pending", strPtr(""), StatusPending},
		{"stored status wins", strPtr(StatusCompleted), StatusCompleted},
		{"in progress preserved", strPtr(StatusInProgress), StatusInProgress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{Status: tc.status}
			if got := b.EffectiveStatus(); got != tc.want {
				t.Errorf("EffectiveStatus() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEffectiveDate(t *testing.T) {
	created := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	requested := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("booking date wins when set", func(t *testing.T) {
		b := Booking{BookingDate: &requested, CreatedAt: created}
		if got := b.EffectiveDate(); !got.Equal(requested) {
			t.Errorf("EffectiveDate() = %v, want %v", got, requested)
		}
	})
	t.Run("falls back to created_at", func(t *testing.T) {
		b := Booking{CreatedAt: created}
		if got := b.EffectiveDate(); !got.Equal(created) {
			t.Errorf("EffectiveDate() = %v, want %v", got, created)
		}
	})
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending", "Done", "NotAStatus", "COMPLETED", " Pending"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
