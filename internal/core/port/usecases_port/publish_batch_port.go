package usecases_port

import (
	"context"
	"time"

	"facebook-publisher-service/internal/core/domain"
)

type PublishBatchUseCase interface {
	Execute(ctx context.Context, listings []domain.Listing, delay time.Duration) domain.BatchOutcome
}
