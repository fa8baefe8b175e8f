package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"facebook-publisher-service/internal/contextkeys"
	"facebook-publisher-service/internal/core/domain"
	"facebook-publisher-service/internal/core/port"
	"facebook-publisher-service/internal/core/port/usecases_port"
)

type PublisherHandlers struct {
	publishBatchUC    usecases_port.PublishBatchUseCase
	publishPostUC     usecases_port.PublishPostUseCase
	checkConnectionUC usecases_port.CheckConnectionUseCase
	getPageInfoUC     usecases_port.GetPageInfoUseCase
}

// NewPublisherHandlers - конструктор для наших обработчиков.
func NewPublisherHandlers(publishBatchUC usecases_port.PublishBatchUseCase,
	publishPostUC usecases_port.PublishPostUseCase,
	checkConnectionUC usecases_port.CheckConnectionUseCase,
	getPageInfoUC usecases_port.GetPageInfoUseCase) *PublisherHandlers {
	return &PublisherHandlers{
		publishBatchUC:    publishBatchUC,
		publishPostUC:     publishPostUC,
		checkConnectionUC: checkConnectionUC,
		getPageInfoUC:     getPageInfoUC,
	}
}

// HandlePublishBatch - обработчик для POST /api/v1/listings/publish-batch
func (h *PublisherHandlers) HandlePublishBatch(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePublishBatch"})

	// 1. Декодируем тело запроса в нашу DTO структуру.
	var reqDTO PublishBatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF { // Если тело запроса пустое
			logger.Error("Failed to decode request body", err, nil)
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// 2. Валидируем батч целиком и каждое объявление по схеме.
	delayMs, invalid, err := validateBatchRequest(&reqDTO)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(invalid) > 0 {
		logger.Warn("Batch rejected: invalid listings", port.Fields{"invalid_count": len(invalid)})
		RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":            "One or more listings are invalid",
			"invalid_listings": invalid,
		})
		return
	}

	// 3. Декодируем проверенные объявления в доменную модель.
	listings := make([]domain.Listing, 0, len(reqDTO.Listings))
	for i, raw := range reqDTO.Listings {
		var dto ListingDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Listing at index %d is malformed: %v", i, err))
			return
		}
		listings = append(listings, dto.toDomain())
	}

	batchLogger := logger.WithFields(port.Fields{"total": len(listings), "delay_ms": delayMs})
	batchLogger.Info("Received batch publish request", nil)

	// 4. Запускаем последовательную публикацию. Батч выполняется синхронно:
	// ответ должен содержать итоговую сводку, поэтому фоновый запуск
	// (как в задачах актуализации) здесь не подходит.
	outcome := h.publishBatchUC.Execute(r.Context(), listings, time.Duration(delayMs)*time.Millisecond)

	batchLogger.Info("Batch publish finished", port.Fields{
		"successful": outcome.Successful,
		"failed":     outcome.Failed,
	})
	RespondWithJSON(w, http.StatusOK, toBatchResponseDTO(outcome))
}

// HandlePublishPost - обработчик для POST /api/v1/posts
func (h *PublisherHandlers) HandlePublishPost(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePublishPost"})

	reqDTO, ok := h.decodePostRequest(w, r, logger)
	if !ok {
		return
	}

	result := h.publishPostUC.Execute(r.Context(), reqDTO.Content, "")
	h.respondPublishResult(w, result)
}

// HandlePublishPostWithImage - обработчик для POST /api/v1/posts/with-image
func (h *PublisherHandlers) HandlePublishPostWithImage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePublishPostWithImage"})

	reqDTO, ok := h.decodePostRequest(w, r, logger)
	if !ok {
		return
	}
	if reqDTO.ImageURL == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'imageUrl' is required")
		return
	}

	result := h.publishPostUC.Execute(r.Context(), reqDTO.Content, reqDTO.ImageURL)
	h.respondPublishResult(w, result)
}

// decodePostRequest декодирует и валидирует тело одиночного поста.
func (h *PublisherHandlers) decodePostRequest(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) (PublishPostRequestDTO, bool) {
	var reqDTO PublishPostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			logger.Error("Failed to decode request body", err, nil)
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return reqDTO, false
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return reqDTO, false
	}

	if reqDTO.Content == "" {
		WriteJSONError(w, http.StatusBadRequest, "Field 'content' is required")
		return reqDTO, false
	}
	if len(reqDTO.Content) > maxContentLength {
		WriteJSONError(w, http.StatusBadRequest,
			fmt.Sprintf("Content too long: %d characters (max %d)", len(reqDTO.Content), maxContentLength))
		return reqDTO, false
	}

	return reqDTO, true
}

func (h *PublisherHandlers) respondPublishResult(w http.ResponseWriter, result domain.PublishResult) {
	if result.Success {
		RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"postId":  result.PostID,
		})
		return
	}

	// Неудачная публикация — это ошибка внешней платформы, не наша: 502.
	RespondWithJSON(w, http.StatusBadGateway, map[string]interface{}{
		"success": false,
		"error":   result.Error,
	})
}

// HandleFacebookStatus - обработчик для GET /api/v1/facebook/status
func (h *PublisherHandlers) HandleFacebookStatus(w http.ResponseWriter, r *http.Request) {
	status := h.checkConnectionUC.Execute(r.Context())

	if status.Connected {
		RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"connected": true,
			"page":      toPageInfoDTO(status.Page),
		})
		return
	}

	RespondWithJSON(w, http.StatusBadGateway, map[string]interface{}{
		"connected": false,
		"error":     status.Error,
	})
}

// HandlePageInfo - обработчик для GET /api/v1/facebook/page-info
func (h *PublisherHandlers) HandlePageInfo(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandlePageInfo"})

	info, err := h.getPageInfoUC.Execute(r.Context())
	if err != nil {
		logger.Error("Failed to get page info", err, nil)
		WriteJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, toPageInfoDTO(info))
}
