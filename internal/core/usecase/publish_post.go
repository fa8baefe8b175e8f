package usecase

import (
	"context"

	"facebook-publisher-service/internal/contextkeys"
	"facebook-publisher-service/internal/core/domain"
	"facebook-publisher-service/internal/core/port"
)

// PublishPostUseCase — публикация одиночного поста (с картинкой или без).
type PublishPostUseCase struct {
	publisher port.FacebookPublisherPort
}

func NewPublishPostUseCase(publisher port.FacebookPublisherPort) *PublishPostUseCase {
	return &PublishPostUseCase{publisher: publisher}
}

func (uc *PublishPostUseCase) Execute(ctx context.Context, content string, imageURL string) domain.PublishResult {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "PublishPost",
		"with_image": imageURL != "",
	})

	var result domain.PublishResult
	if imageURL != "" {
		result = uc.publisher.PublishWithImage(ctx, content, imageURL)
	} else {
		result = uc.publisher.PublishMessage(ctx, content)
	}

	if result.Success {
		ucLogger.Info("Post published", port.Fields{"post_id": result.PostID})
	} else {
		ucLogger.Warn("Post publish failed", port.Fields{"publish_error": result.Error})
	}

	return result
}
