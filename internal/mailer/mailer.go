// Package mailer abstracts the outbound mail transport.  The rest of the
// application talks to the Mailer interface; the SMTP implementation is
// the only thing that knows about servers, auth and TLS.
package mailer

import (
    "context"

    mail "github.com/wneessen/go-mail"
)

// Mailer sends a single HTML email.  Implementations must be safe for
// concurrent use; the queue consumer is the only caller today but that is
// not a contract.
type Mailer interface {
    Send(ctx context.Context, to, subject, htmlBody string) error
}

// fromName appears as the display name on every outgoing message.
const fromName = "Teeman Cleaning Services"

// SMTP sends mail through a single SMTP account.  The username doubles as
// the From address, matching how the booking mailbox is provisioned.
type SMTP struct {
    host string
    port int
    user string
    pass string
}

func NewSMTP(host string, port int, user, pass string) *SMTP {
    return &SMTP{host: host, port: port, user: user, pass: pass}
}

// Send composes and delivers one message.  A fresh client per send keeps
// the implementation stateless; notification volume is a handful of mails
// per booking, not a firehose.
func (s *SMTP) Send(ctx context.Context, to, subject, htmlBody string) error {
    opts := []mail.Option{
        mail.WithPort(s.port),
        mail.WithTLSPolicy(mail.TLSOpportunistic),
    }
    if s.pass != "" {
        opts = append(opts,
            mail.WithSMTPAuth(mail.SMTPAuthPlain),
            mail.WithUsername(s.user),
            mail.WithPassword(s.pass),
        )
    }
    client, err := mail.NewClient(s.host, opts...)
    if err != nil {
        return err
    }

    msg := mail.NewMsg()
    if err := msg.FromFormat(fromName, s.user); err != nil {
        return err
    }
    if err := msg.To(to); err != nil {
        return err
    }
    msg.Subject(subject)
    msg.SetBodyString(mail.TypeTextHTML, htmlBody)

    return client.DialAndSendWithContext(ctx, msg)
}
