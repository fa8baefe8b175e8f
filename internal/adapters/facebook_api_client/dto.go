package facebook_api_client

// Тело POST-запроса в ленту страницы: {pageID}/feed
type feedPostRequest struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// Тело POST-запроса с картинкой: {pageID}/photos
type photoPostRequest struct {
	Message     string `json:"message"`
	URL         string `json:"url"`
	AccessToken string `json:"access_token"`
}

// graphErrorResponse — стандартная обертка ошибки Graph API.
type graphErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// publishResponse — ответ на публикацию. Graph возвращает либо id,
// либо объект error (и тогда статус-код не 2xx).
type publishResponse struct {
	ID     string              `json:"id"`
	PostID string              `json:"post_id"`
	Error  *graphErrorResponse `json:"error"`
}

// pageResponse — ответ на чтение полей страницы.
type pageResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	FollowersCount int                 `json:"followers_count"`
	FanCount       int                 `json:"fan_count"`
	Error          *graphErrorResponse `json:"error"`
}
