package repository

import "context"

// Notifier delivers the finished report to a recipient. Implementations
// must treat missing configuration as a silent skip; transport errors are
// returned for logging but never fail the run.
type Notifier interface {
	Send(ctx context.Context, subject, body, attachmentPath string) error
}
