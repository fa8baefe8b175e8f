package facebook_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"facebook-publisher-service/internal/contextkeys"
	"facebook-publisher-service/internal/core/domain"
	"facebook-publisher-service/internal/core/port"
)

// Config — учетные данные и адрес Graph API.
// Учетные данные приходят только из конфигурации процесса,
// никогда — из тела входящего запроса.
type Config struct {
	BaseURL     string // Например, "https://graph.facebook.com/v18.0"
	PageID      string
	AccessToken string
	AppID       string
	AppSecret   string
}

// Client — клиент для взаимодействия с Facebook Graph API.
// Создается один раз в composition root и внедряется через конструктор.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

const missingCredentialsError = "missing Facebook credentials (FACEBOOK_PAGE_ID or FACEBOOK_ACCESS_TOKEN)"

func (c *Client) hasCredentials() bool {
	return c.cfg.PageID != "" && c.cfg.AccessToken != ""
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Пробрасываем trace_id во внешний вызов
	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// PublishMessage публикует текстовый пост в ленту страницы.
// Любой сбой нормализуется в PublishResult{Success: false} — ошибок
// наружу этот метод не выбрасывает. Ровно один исходящий вызов, без повторов.
func (c *Client) PublishMessage(ctx context.Context, message string) domain.PublishResult {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FacebookApiClient",
		"method":    "PublishMessage",
	})

	if !c.hasCredentials() {
		logger.Warn("Publish attempted without configured credentials", nil)
		return domain.PublishResult{Success: false, Error: missingCredentialsError}
	}

	endpoint := fmt.Sprintf("%s/%s/feed", c.cfg.BaseURL, c.cfg.PageID)
	body := feedPostRequest{Message: message, AccessToken: c.cfg.AccessToken}

	return c.publish(ctx, logger, endpoint, body)
}

// PublishWithImage публикует пост с картинкой через photo-endpoint.
func (c *Client) PublishWithImage(ctx context.Context, message string, imageURL string) domain.PublishResult {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FacebookApiClient",
		"method":    "PublishWithImage",
	})

	if !c.hasCredentials() {
		logger.Warn("Publish attempted without configured credentials", nil)
		return domain.PublishResult{Success: false, Error: missingCredentialsError}
	}

	endpoint := fmt.Sprintf("%s/%s/photos", c.cfg.BaseURL, c.cfg.PageID)
	body := photoPostRequest{Message: message, URL: imageURL, AccessToken: c.cfg.AccessToken}

	return c.publish(ctx, logger, endpoint, body)
}

// publish выполняет один POST к Graph API и нормализует ответ.
func (c *Client) publish(ctx context.Context, logger port.LoggerPort, endpoint string, body interface{}) domain.PublishResult {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.PublishResult{Success: false, Error: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	logger.Debug("Sending publish request to Graph API", port.Fields{"url": endpoint})

	resp, err := c.doRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logger.Error("Failed to perform request to Graph API", err, nil)
		return domain.PublishResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	var data publishResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.Error("Failed to decode Graph API response", err, nil)
		return domain.PublishResult{Success: false, Error: fmt.Sprintf("failed to decode response: %v", err)}
	}

	if data.Error != nil {
		apiErr := fmt.Sprintf("Facebook API Error: %s (Code: %d)", data.Error.Message, data.Error.Code)
		logger.Warn("Graph API returned an error", port.Fields{"publish_error": apiErr, "status_code": resp.StatusCode})
		return domain.PublishResult{Success: false, Error: apiErr}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Не 2xx, но без объекта error — нестандартный ответ, тоже не успех.
		apiErr := fmt.Sprintf("Graph API returned non-success status code %d", resp.StatusCode)
		logger.Warn("Graph API returned an error", port.Fields{"publish_error": apiErr})
		return domain.PublishResult{Success: false, Error: apiErr}
	}

	logger.Info("Successfully published to Facebook", port.Fields{"post_id": data.ID})
	return domain.PublishResult{Success: true, PostID: data.ID}
}

// TestConnection проверяет доступность страницы (поля name,id).
// Как и публикация — никогда не выбрасывает ошибку наружу.
func (c *Client) TestConnection(ctx context.Context) domain.ConnectionStatus {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FacebookApiClient",
		"method":    "TestConnection",
	})

	if !c.hasCredentials() {
		return domain.ConnectionStatus{Connected: false, Error: missingCredentialsError}
	}

	endpoint := fmt.Sprintf("%s/%s?fields=name,id&access_token=%s",
		c.cfg.BaseURL, c.cfg.PageID, url.QueryEscape(c.cfg.AccessToken))

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Error("Failed to perform request to Graph API", err, nil)
		return domain.ConnectionStatus{Connected: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	var data pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.Error("Failed to decode Graph API response", err, nil)
		return domain.ConnectionStatus{Connected: false, Error: fmt.Sprintf("failed to decode response: %v", err)}
	}

	if data.Error != nil {
		return domain.ConnectionStatus{Connected: false, Error: data.Error.Message}
	}

	return domain.ConnectionStatus{
		Connected: true,
		Page: &domain.PageInfo{
			ID:   data.ID,
			Name: data.Name,
		},
	}
}

// GetPageInfo возвращает метаданные страницы (name, id, подписчики, лайки).
// Здесь контракт другой: ошибка явная, а не "тихий" false —
// вызывающий должен знать, почему метаданные недоступны.
func (c *Client) GetPageInfo(ctx context.Context) (*domain.PageInfo, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FacebookApiClient",
		"method":    "GetPageInfo",
	})

	if !c.hasCredentials() {
		return nil, fmt.Errorf("failed to get page info: %s", missingCredentialsError)
	}

	endpoint := fmt.Sprintf("%s/%s?fields=name,id,followers_count,fan_count&access_token=%s",
		c.cfg.BaseURL, c.cfg.PageID, url.QueryEscape(c.cfg.AccessToken))

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Error("Failed to perform request to Graph API", err, nil)
		return nil, fmt.Errorf("failed to get page info: %w", err)
	}
	defer resp.Body.Close()

	var data pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.Error("Failed to decode Graph API response", err, nil)
		return nil, fmt.Errorf("failed to decode page info response: %w", err)
	}

	if data.Error != nil {
		return nil, fmt.Errorf("failed to get page info: %s", data.Error.Message)
	}

	logger.Info("Successfully received page info", port.Fields{"page_id": data.ID})

	// Маппим DTO ответа в доменную модель, чтобы ядро
	// не зависело от формата Graph API.
	return &domain.PageInfo{
		ID:        data.ID,
		Name:      data.Name,
		Followers: data.FollowersCount,
		Likes:     data.FanCount,
	}, nil
}
