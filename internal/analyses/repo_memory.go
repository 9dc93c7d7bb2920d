package analyses

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Analysis)}
}

// Create stores the analysis.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[analysis.ID] = analysis
	return nil
}

// GetByID returns an analysis by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// List returns analyses newest first, with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]Analysis, 0, len(r.byID))
	for _, analysis := range r.byID {
		all = append(all, analysis)
	}
	r.mu.RUnlock()

	if len(all) == 0 || offset >= len(all) {
		return []Analysis{}, nil
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// MarkProcessing transitions the analysis to processing.
func (r *MemoryRepo) MarkProcessing(ctx context.Context, analysisID string, startedAt time.Time) error {
	return r.update(ctx, analysisID, func(a *Analysis) {
		a.Status = StatusProcessing
		a.StartedAt = &startedAt
	})
}

// MarkCompleted stores the report and transitions to completed.
func (r *MemoryRepo) MarkCompleted(ctx context.Context, analysisID string, report *Report, completedAt time.Time) error {
	return r.update(ctx, analysisID, func(a *Analysis) {
		a.Status = StatusCompleted
		a.Report = report
		a.CompletedAt = &completedAt
	})
}

// MarkFailed records the failure and transitions to failed.
func (r *MemoryRepo) MarkFailed(ctx context.Context, analysisID, errorCode, errorMessage string, completedAt time.Time) error {
	return r.update(ctx, analysisID, func(a *Analysis) {
		a.Status = StatusFailed
		a.ErrorCode = errorCode
		a.ErrorMessage = errorMessage
		a.CompletedAt = &completedAt
	})
}

func (r *MemoryRepo) update(ctx context.Context, analysisID string, apply func(*Analysis)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return ErrNotFound
	}
	apply(&analysis)
	r.byID[analysisID] = analysis
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
