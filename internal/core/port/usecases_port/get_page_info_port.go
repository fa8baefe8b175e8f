package usecases_port

import (
	"context"

	"facebook-publisher-service/internal/core/domain"
)

type GetPageInfoUseCase interface {
	Execute(ctx context.Context) (*domain.PageInfo, error)
}
