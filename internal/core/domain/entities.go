package domain

// Listing — объект недвижимости, полученный от вызывающей стороны.
// После приема не изменяется; живет только в рамках одного запроса,
// никакого постоянного хранилища у сервиса нет.
type Listing struct {
	Address      string
	Price        string
	City         string
	Bedrooms     int
	Bathrooms    int
	Sqft         int
	Features     []string
	Type         string
	Neighborhood string
	ImageURL     string
}

// PublishResult — единый результат для всех операций публикации.
// PostID заполнен только при успехе, Error — только при неудаче.
type PublishResult struct {
	Success bool
	PostID  string
	Error   string
}

// BatchItemResult — пара "объявление + результат его публикации".
type BatchItemResult struct {
	Listing Listing
	Result  PublishResult
}

// BatchOutcome — итог пакетной публикации.
// Инвариант: Successful + Failed == Total == len(Results),
// порядок Results совпадает с порядком входных объявлений.
type BatchOutcome struct {
	Results    []BatchItemResult
	Total      int
	Successful int
	Failed     int
}

// PageInfo — метаданные страницы Facebook.
type PageInfo struct {
	ID        string
	Name      string
	Followers int
	Likes     int
}

// ConnectionStatus — результат проверки соединения со страницей.
type ConnectionStatus struct {
	Connected bool
	Page      *PageInfo
	Error     string
}
