package usecase

import (
	"context"
	"errors"
	"fmt"

	"smartmeet/internal/meeting"
	"smartmeet/internal/meeting/repository"
	"smartmeet/internal/model"
)

// List returns stored meetings ordered by start time.
func (uc *implUseCase) List(ctx context.Context, input meeting.ListInput) (meeting.ListOutput, error) {
	meetings, err := uc.repo.List(ctx, repository.ListOptions{
		From:   input.From,
		To:     input.To,
		Status: input.Status,
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "List: failed to list meetings: %v", err)
		return meeting.ListOutput{}, fmt.Errorf("failed to list meetings: %w", err)
	}

	return meeting.ListOutput{
		Meetings: meetings,
		Count:    len(meetings),
	}, nil
}

// Detail returns a single stored meeting by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Meeting, error) {
	m, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Meeting{}, meeting.ErrMeetingNotFound
		}
		uc.l.Errorf(ctx, "Detail: failed to get meeting %s: %v", id, err)
		return model.Meeting{}, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}
