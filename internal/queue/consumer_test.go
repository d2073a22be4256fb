package queue

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return f.err
}

func testEvent() BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:   7,
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@example.com",
		ServiceType: "Deep Cleaning",
		BookingDate: "2024-06-01",
		Message:     "please ring twice",
		CreatedAt:   "2024-05-30 08:00:00",
	}
}

func TestHandleMessageSendsBothEmails(t *testing.T) {
	m := &fakeMailer{}
	body, _ := json.Marshal(testEvent())

	if err := handleMessage(body, m, "staff@teeman.example"); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}
	if len(m.sent) != 2 {
		t.Fatalf("sent %d mails, want 2", len(m.sent))
	}
	if m.sent[0].to != "staff@teeman.example" {
		t.Errorf("first mail to %q, want staff address", m.sent[0].to)
	}
	if !strings.Contains(m.sent[0].body, "Deep Cleaning") {
		t.Error("staff alert does not mention the service")
	}
	if m.sent[1].to != "ann@example.com" {
		t.Errorf("second mail to %q, want customer address", m.sent[1].to)
	}
	if !strings.Contains(m.sent[1].body, "Hello Ann") {
		t.Error("confirmation does not greet the customer")
	}
}

func TestHandleMessageSendFailureIsNotAnError(t *testing.T) {
	// A dead SMTP server must not poison the queue: the message still
	// counts as handled and is only logged.
	m := &fakeMailer{err: errors.New("smtp down")}
	body, _ := json.Marshal(testEvent())

	if err := handleMessage(body, m, "staff@teeman.example"); err != nil {
		t.Fatalf("handleMessage: %v, want nil despite send failures", err)
	}
	if len(m.sent) != 2 {
		t.Errorf("sent %d mails, want both attempted", len(m.sent))
	}
}

func TestHandleMessageRejectsMalformedPayload(t *testing.T) {
	m := &fakeMailer{}
	if err := handleMessage([]byte("{not json"), m, "staff@teeman.example"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if len(m.sent) != 0 {
		t.Errorf("sent %d mails for garbage payload, want 0", len(m.sent))
	}
}
