package usecase

import (
	"context"

	"facebook-publisher-service/internal/contextkeys"
	"facebook-publisher-service/internal/core/domain"
	"facebook-publisher-service/internal/core/port"
)

// CheckConnectionUseCase — проверка доступности страницы Facebook.
type CheckConnectionUseCase struct {
	publisher port.FacebookPublisherPort
}

func NewCheckConnectionUseCase(publisher port.FacebookPublisherPort) *CheckConnectionUseCase {
	return &CheckConnectionUseCase{publisher: publisher}
}

func (uc *CheckConnectionUseCase) Execute(ctx context.Context) domain.ConnectionStatus {
	logger := contextkeys.LoggerFromContext(ctx)

	status := uc.publisher.TestConnection(ctx)
	if !status.Connected {
		logger.Warn("Facebook connection check failed", port.Fields{"connection_error": status.Error})
	}

	return status
}
