package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"smartmeet/internal/meeting/repository"
	"smartmeet/internal/model"
	pkgLog "smartmeet/pkg/log"
)

// DefaultCapacity bounds the store when no capacity is configured.
const DefaultCapacity = 256

type implRepository struct {
	cache *lru.Cache[string, model.Meeting]
	l     pkgLog.Logger
}

// New creates an in-memory meeting repository. The store is bounded:
// once capacity is reached the least recently used meeting is evicted.
// Meetings live for the process lifetime only.
func New(capacity int, l pkgLog.Logger) (repository.MeetingRepository, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, model.Meeting](capacity)
	if err != nil {
		return nil, err
	}
	return &implRepository{
		cache: cache,
		l:     l,
	}, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Meeting, error) {
	m := model.Meeting{
		ID:              uuid.NewString(),
		Topic:           opt.Topic,
		Participants:    opt.Participants,
		StartTime:       opt.StartTime,
		DurationMinutes: opt.DurationMinutes,
		Priority:        opt.Priority,
		Status:          model.StatusScheduled,
		CreatedAt:       opt.CreatedAt,
		UpdatedAt:       opt.CreatedAt,
	}

	if evicted := r.cache.Add(m.ID, m); evicted {
		r.l.Warnf(ctx, "meeting store: capacity reached, evicted oldest entry")
	}
	return m, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Meeting, error) {
	m, ok := r.cache.Get(id)
	if !ok {
		return model.Meeting{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Meeting, error) {
	all := r.cache.Values()

	out := make([]model.Meeting, 0, len(all))
	for _, m := range all {
		if opt.Status != "" && m.Status != opt.Status {
			continue
		}
		if opt.From != nil && m.StartTime.Before(*opt.From) {
			continue
		}
		if opt.To != nil && !m.StartTime.Before(*opt.To) {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (r *implRepository) ListOverlapping(ctx context.Context, start time.Time, durationMinutes int) ([]model.Meeting, error) {
	all := r.cache.Values()

	out := make([]model.Meeting, 0)
	for _, m := range all {
		if m.Status != model.StatusScheduled {
			continue
		}
		if m.Overlaps(start, durationMinutes) {
			out = append(out, m)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, id string, status model.MeetingStatus, at time.Time) (model.Meeting, error) {
	m, ok := r.cache.Get(id)
	if !ok {
		return model.Meeting{}, repository.ErrNotFound
	}

	m.Status = status
	m.UpdatedAt = at
	r.cache.Add(id, m)
	return m, nil
}
