package usecases_port

import (
	"context"

	"facebook-publisher-service/internal/core/domain"
)

type PublishPostUseCase interface {
	// imageURL может быть пустым — тогда публикуется обычный текстовый пост.
	Execute(ctx context.Context, content string, imageURL string) domain.PublishResult
}
