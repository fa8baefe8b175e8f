package port

import (
	"context"

	"facebook-publisher-service/internal/core/domain"
)

// FacebookPublisherPort — контракт исходящего клиента Facebook Graph API.
// Операции публикации не возвращают error: любой сбой (транспортный или
// на уровне API) нормализуется в PublishResult{Success: false}.
type FacebookPublisherPort interface {
	// PublishMessage публикует текстовый пост в ленту страницы.
	// Ровно один исходящий вызов, без повторов.
	PublishMessage(ctx context.Context, message string) domain.PublishResult

	// PublishWithImage публикует пост с картинкой через photo-endpoint.
	PublishWithImage(ctx context.Context, message string, imageURL string) domain.PublishResult

	// TestConnection проверяет доступность страницы.
	TestConnection(ctx context.Context) domain.ConnectionStatus

	// GetPageInfo возвращает метаданные страницы. В отличие от публикации,
	// здесь ошибка явная: вызывающий должен знать, почему данных нет.
	GetPageInfo(ctx context.Context) (*domain.PageInfo, error)
}
