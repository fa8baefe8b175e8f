package usecases_port

import (
	"context"

	"facebook-publisher-service/internal/core/domain"
)

type CheckConnectionUseCase interface {
	Execute(ctx context.Context) domain.ConnectionStatus
}
