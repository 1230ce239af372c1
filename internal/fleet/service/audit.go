package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/idx"
)

// AuditRecorder writes audit entries in the background. Record is
// fire-and-forget: a full buffer drops the entry with a warning and store
// failures are logged, never surfaced to the operation that produced them.
type AuditRecorder struct {
	Store  store.Store
	Logger *slog.Logger

	entries chan domain.AuditEntry
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewAuditRecorder creates a recorder with the given buffer size.
// If buffer is 0 or negative, defaults to 256.
func NewAuditRecorder(st store.Store, logger *slog.Logger, buffer int) *AuditRecorder {
	if buffer <= 0 {
		buffer = 256
	}
	return &AuditRecorder{
		Store:   st,
		Logger:  logger,
		entries: make(chan domain.AuditEntry, buffer),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins the background writer. Call Stop() to flush and shut down.
func (r *AuditRecorder) Start() {
	go r.run()
	r.Logger.Info("audit recorder started", "buffer", cap(r.entries))
}

// Stop drains buffered entries and shuts the writer down.
func (r *AuditRecorder) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("audit recorder stopped")
}

// Record queues an audit entry without blocking the caller. The entry's ID
// and timestamp are filled in here.
func (r *AuditRecorder) Record(actor Identity, action, targetType, targetID string, details map[string]any) {
	entry := domain.AuditEntry{
		ID:             idx.New().String(),
		UserID:         actor.UserID,
		OrganizationID: actor.OrgID,
		Action:         action,
		TargetType:     targetType,
		TargetID:       targetID,
		Details:        details,
		Timestamp:      time.Now().UTC(),
	}

	select {
	case r.entries <- entry:
	default:
		r.Logger.Warn("audit buffer full, dropping entry",
			"action", action, "target_type", targetType, "target_id", targetID)
	}
}

func (r *AuditRecorder) run() {
	defer close(r.doneCh)

	for {
		select {
		case entry := <-r.entries:
			r.write(entry)
		case <-r.stopCh:
			// Drain whatever is still buffered before exiting.
			for {
				select {
				case entry := <-r.entries:
					r.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (r *AuditRecorder) write(entry domain.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Store.AuditLogs().CreateAuditEntry(ctx, entry); err != nil {
		r.Logger.Error("failed to write audit entry",
			"action", entry.Action, "target_id", entry.TargetID, "error", err)
	}
}
