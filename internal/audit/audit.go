package audit

import (
	"context"
	"database/sql"

	"github.com/buntagonalprism/firebase-auth-utils/internal/logger"
)

// Event is one normalized sign-in outcome worth keeping a trail of.
// No credentials or tokens are recorded, only the shape of the result.
type Event struct {
	RequestID   string
	Operation   string // "sign_up", "sign_in", "social_sign_in", "sign_out"
	Provider    string // empty for email operations
	Status      string
	HadIdentity bool
}

// Recorder persists audit events.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DBRecorder writes events to the signin_audit table. Recording is
// best-effort: a failed insert is logged and never fails the operation
// it describes.
type DBRecorder struct {
	db execer
}

func NewDBRecorder(db execer) *DBRecorder {
	return &DBRecorder{db: db}
}

func (r *DBRecorder) Record(ctx context.Context, e Event) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO signin_audit (request_id, operation, provider, status, had_identity)
		VALUES ($1, $2, $3, $4, $5)
	`,
		e.RequestID,
		e.Operation,
		e.Provider,
		e.Status,
		e.HadIdentity,
	)
	if err != nil {
		logger.Error("audit insert failed", map[string]any{
			"operation": e.Operation,
			"error":     err.Error(),
		})
	}
}

// NopRecorder discards events. Used when no database is configured.
type NopRecorder struct{}

func NewNopRecorder() *NopRecorder { return &NopRecorder{} }

func (*NopRecorder) Record(ctx context.Context, e Event) {}
