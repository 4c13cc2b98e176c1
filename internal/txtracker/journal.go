package txtracker

import "context"

// Journal persists in-flight transactions so they can be inspected from
// outside the process. Failures are logged and never block tracking.
type Journal interface {
	Save(ctx context.Context, tx PendingTransaction) error
	Delete(ctx context.Context, id string) error
}

type nopJournal struct{}

func (nopJournal) Save(context.Context, PendingTransaction) error { return nil }

func (nopJournal) Delete(context.Context, string) error { return nil }
