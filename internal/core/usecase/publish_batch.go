package usecase

import (
	"context"
	"fmt"
	"time"

	"facebook-publisher-service/internal/contextkeys"
	"facebook-publisher-service/internal/core/domain"
	"facebook-publisher-service/internal/core/port"
)

// PublishBatchUseCase — последовательная публикация пакета объявлений.
// Предусловия (1..50 объявлений, задержка 1с..60с) проверяет REST-слой,
// сюда приходят уже провалидированные данные.
type PublishBatchUseCase struct {
	publisher port.FacebookPublisherPort
}

func NewPublishBatchUseCase(publisher port.FacebookPublisherPort) *PublishBatchUseCase {
	return &PublishBatchUseCase{publisher: publisher}
}

// Execute публикует объявления строго по одному, в порядке поступления.
// Между публикациями — фиксированная пауза delay (после последней паузы нет).
// Никакого параллелизма: пауза — единственный механизм троттлинга,
// а порядок публикаций является частью контракта.
func (uc *PublishBatchUseCase) Execute(ctx context.Context, listings []domain.Listing, delay time.Duration) domain.BatchOutcome {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "PublishBatch",
		"total":    len(listings),
		"delay_ms": delay.Milliseconds(),
	})

	ucLogger.Info("Starting sequential batch publishing", nil)

	outcome := domain.BatchOutcome{
		Results: make([]domain.BatchItemResult, 0, len(listings)),
		Total:   len(listings),
	}

	for i, listing := range listings {
		itemLogger := ucLogger.WithFields(port.Fields{"index": i, "address": listing.Address})

		result := uc.publishOne(ctx, listing)
		if result.Success {
			itemLogger.Info("Listing published", port.Fields{"post_id": result.PostID})
		} else {
			itemLogger.Warn("Listing publish failed", port.Fields{"publish_error": result.Error})
		}

		outcome.Results = append(outcome.Results, domain.BatchItemResult{
			Listing: listing,
			Result:  result,
		})

		if i < len(listings)-1 {
			time.Sleep(delay)
		}
	}

	for _, item := range outcome.Results {
		if item.Result.Success {
			outcome.Successful++
		}
	}
	outcome.Failed = outcome.Total - outcome.Successful

	ucLogger.Info("Batch publishing finished", port.Fields{
		"successful": outcome.Successful,
		"failed":     outcome.Failed,
	})

	return outcome
}

// publishOne форматирует и публикует одно объявление.
// Паника при форматировании или публикации превращается в синтетический
// failed-результат: один упавший элемент не прерывает остальной пакет.
func (uc *PublishBatchUseCase) publishOne(ctx context.Context, listing domain.Listing) (result domain.PublishResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.PublishResult{
				Success: false,
				Error:   fmt.Sprintf("unexpected fault: %v", r),
			}
		}
	}()

	message := domain.FormatListingMessage(listing)

	if listing.ImageURL != "" {
		return uc.publisher.PublishWithImage(ctx, message, listing.ImageURL)
	}
	return uc.publisher.PublishMessage(ctx, message)
}
