package history

import "context"

// StoreAPI is the persistence surface for optimizer runs. The engine never
// depends on it; only the transport layer records and lists runs, and only
// when a database is configured.
type StoreAPI interface {
	InsertRun(ctx context.Context, run Run) (string, error)
	ListRuns(ctx context.Context, limit, offset int) ([]Run, error)
}
