package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// DispatchReaper marks newsletters abandoned mid-dispatch (worker
// crashed while SENDING) as FAILED so they don't look in-flight
// forever. Recipients that were never attempted keep their PENDING
// delivery rows closed out as FAILED too.
type DispatchReaper struct {
	db           *sql.DB
	staleWindow  time.Duration
	tickInterval time.Duration
}

func NewDispatchReaper(db *sql.DB) *DispatchReaper {
	return &DispatchReaper{
		db:           db,
		staleWindow:  30 * time.Minute,
		tickInterval: 5 * time.Minute,
	}
}

func (w *DispatchReaper) Start(ctx context.Context) {
	log.Println("🕒 Dispatch reaper started (30min stale window)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.reapStale(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Dispatch reaper stopped")
			return
		case <-ticker.C:
			w.reapStale(ctx)
		}
	}
}

func (w *DispatchReaper) reapStale(ctx context.Context) {
	query := `
		UPDATE newsletters
		SET
			status = 'FAILED',
			updated_at = NOW()
		WHERE
			status = 'SENDING'
			AND updated_at < NOW() - ($1 * INTERVAL '1 minute')
		RETURNING id
	`

	rows, err := w.db.QueryContext(ctx, query, int(w.staleWindow.Minutes()))
	if err != nil {
		log.Printf("❌ Failed to scan for stale dispatches: %v", err)
		return
	}
	defer rows.Close()

	reaped := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Printf("⚠️ Failed to scan stale dispatch row: %v", err)
			continue
		}

		if _, err := w.db.ExecContext(ctx, `
			UPDATE newsletter_deliveries
			SET status = 'FAILED', error = 'dispatch abandoned'
			WHERE newsletter_id = $1 AND status = 'PENDING'
		`, id); err != nil {
			log.Printf("⚠️ Failed to close out deliveries for %s: %v", id, err)
		}

		log.Printf("⏱️ Stale dispatch reaped: newsletter=%s", id)
		reaped++
	}

	if reaped > 0 {
		log.Printf("✅ %d stale dispatch(es) marked as FAILED", reaped)
	}
}
