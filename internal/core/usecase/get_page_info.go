package usecase

import (
	"context"

	"facebook-publisher-service/internal/contextkeys"
	"facebook-publisher-service/internal/core/domain"
	"facebook-publisher-service/internal/core/port"
)

// GetPageInfoUseCase — получение метаданных страницы Facebook.
type GetPageInfoUseCase struct {
	publisher port.FacebookPublisherPort
}

func NewGetPageInfoUseCase(publisher port.FacebookPublisherPort) *GetPageInfoUseCase {
	return &GetPageInfoUseCase{publisher: publisher}
}

func (uc *GetPageInfoUseCase) Execute(ctx context.Context) (*domain.PageInfo, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	info, err := uc.publisher.GetPageInfo(ctx)
	if err != nil {
		logger.Error("Failed to get page info", err, nil)
		return nil, err
	}

	return info, nil
}
