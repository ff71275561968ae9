package mailer

import "context"

// Sender delivers a single email. The contact relay is the only caller;
// delivery is synchronous and best-effort.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}
