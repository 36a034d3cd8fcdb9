package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartmeet/internal/meeting"
	"smartmeet/internal/meeting/repository"
	"smartmeet/internal/model"
)

// Cancel marks a stored meeting cancelled. Cancelled meetings stay
// listable but no longer count as conflicts.
func (uc *implUseCase) Cancel(ctx context.Context, id string) error {
	_, err := uc.repo.UpdateStatus(ctx, id, model.StatusCancelled, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return meeting.ErrMeetingNotFound
		}
		uc.l.Errorf(ctx, "Cancel: failed to cancel meeting %s: %v", id, err)
		return fmt.Errorf("failed to cancel meeting: %w", err)
	}

	uc.l.Infof(ctx, "Cancel: meeting %s cancelled", id)
	return nil
}
