package usecase

import (
	"context"

	"huntlog/internal/domain/entity"
)

// PropagationUsecase notifies viewers after a successful mutation.
type PropagationUsecase interface {
	// Propagate writes the durable feed and schedules the relay broadcast. It
	// never fails the caller.
	Propagate(ctx context.Context, event *entity.ChangeEvent)

	// Wait blocks until in-flight relay broadcasts finish or ctx is done.
	Wait(ctx context.Context) error
}
