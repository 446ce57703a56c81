package jobs

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"sunlight-admin/internal/insights"
	"sunlight-admin/internal/store"
)

// Worker drains the job queue and refreshes per-user insight snapshots so
// the coping-tools widget can serve a warm result.
type Worker struct {
	ID       string
	Repo     *Repo
	Insights *insights.Service
	Store    *store.Store
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				log.Printf("worker claim error: %v\n", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(ctx, job)
		}
	}
}

func (w *Worker) handle(ctx context.Context, job *Job) {
	switch job.Type {
	case TypeInsightsRefresh:
		w.handleRefresh(ctx, job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleRefresh(ctx context.Context, job *Job) {
	type payload struct {
		UserID string `json:"user_id"`
	}
	var p payload
	if err := json.Unmarshal(job.Payload, &p); err != nil || p.UserID == "" {
		_ = w.Repo.MarkFailed(job.ID, "bad payload")
		return
	}

	stats, err := w.Insights.Coping(ctx, p.UserID)
	if err != nil {
		w.retry(job, "compute error")
		return
	}

	b, err := json.Marshal(stats)
	if err != nil {
		_ = w.Repo.MarkFailed(job.ID, "marshal error")
		return
	}

	if err := w.Store.SaveInsightSnapshot(ctx, p.UserID, b); err != nil {
		w.retry(job, "snapshot write error")
		return
	}

	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}
