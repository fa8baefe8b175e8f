package rest

import (
	"fmt"

	"facebook-publisher-service/internal/contracts"
)

const (
	maxBatchSize     = 50
	minDelayMs       = 1000
	maxDelayMs       = 60000
	defaultDelayMs   = 5000
	maxContentLength = 8000
)

// InvalidListing — ошибка валидации одного объявления с его позицией в батче.
type InvalidListing struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// validateBatchRequest проверяет батч до запуска публикации:
// границы пакета, диапазон задержки и каждое объявление по JSON-схеме.
// Ни один внешний вызов до прохождения этих проверок не выполняется.
func validateBatchRequest(req *PublishBatchRequestDTO) (delayMs int, invalid []InvalidListing, err error) {
	if len(req.Listings) == 0 {
		return 0, nil, fmt.Errorf("field 'listings' must be a non-empty array")
	}
	if len(req.Listings) > maxBatchSize {
		return 0, nil, fmt.Errorf("too many listings: %d (max %d)", len(req.Listings), maxBatchSize)
	}

	delayMs = defaultDelayMs
	if req.DelayBetweenPosts != nil {
		delayMs = *req.DelayBetweenPosts
	}
	if delayMs < minDelayMs || delayMs > maxDelayMs {
		return 0, nil, fmt.Errorf("field 'delayBetweenPosts' must be between %d and %d ms", minDelayMs, maxDelayMs)
	}

	for i, raw := range req.Listings {
		if schemaErr := contracts.ValidateListing(raw); schemaErr != nil {
			invalid = append(invalid, InvalidListing{Index: i, Error: schemaErr.Error()})
		}
	}

	return delayMs, invalid, nil
}
