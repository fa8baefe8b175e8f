package rest

import (
	"encoding/json"

	"facebook-publisher-service/internal/core/domain"
)

// PublishBatchRequestDTO — тело POST /api/v1/listings/publish-batch.
// Listings сознательно оставлены "сырыми": каждое объявление сначала
// проверяется по JSON-схеме и только потом декодируется в доменную модель.
type PublishBatchRequestDTO struct {
	Listings          []json.RawMessage `json:"listings"`
	DelayBetweenPosts *int              `json:"delayBetweenPosts"` // мс; по умолчанию 5000
}

// ListingDTO — одно объявление из тела запроса.
type ListingDTO struct {
	Address      string         `json:"address"`
	Price        FlexibleString `json:"price"`
	City         string         `json:"city"`
	Bedrooms     int            `json:"bedrooms"`
	Bathrooms    int            `json:"bathrooms"`
	Sqft         int            `json:"sqft"`
	Features     []string       `json:"features"`
	Type         string         `json:"type"`
	Neighborhood string         `json:"neighborhood"`
	ImageURL     string         `json:"imageUrl"`
}

// FlexibleString принимает строку или число:
// цена в запросе может прийти и как "450000", и как 450000.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexibleString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexibleString(num.String())
	return nil
}

func (dto ListingDTO) toDomain() domain.Listing {
	return domain.Listing{
		Address:      dto.Address,
		Price:        string(dto.Price),
		City:         dto.City,
		Bedrooms:     dto.Bedrooms,
		Bathrooms:    dto.Bathrooms,
		Sqft:         dto.Sqft,
		Features:     dto.Features,
		Type:         dto.Type,
		Neighborhood: dto.Neighborhood,
		ImageURL:     dto.ImageURL,
	}
}

// PublishPostRequestDTO — тело POST /api/v1/posts и /api/v1/posts/with-image.
type PublishPostRequestDTO struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// --- Ответы ---

type BatchSummaryDTO struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type BatchItemResultDTO struct {
	Address string  `json:"address"`
	Price   string  `json:"price"`
	Success bool    `json:"success"`
	Error   *string `json:"error"`
	PostID  *string `json:"postId"`
}

type PublishBatchResponseDTO struct {
	Summary BatchSummaryDTO      `json:"summary"`
	Results []BatchItemResultDTO `json:"results"`
}

func toBatchResponseDTO(outcome domain.BatchOutcome) PublishBatchResponseDTO {
	results := make([]BatchItemResultDTO, 0, len(outcome.Results))
	for _, item := range outcome.Results {
		dto := BatchItemResultDTO{
			Address: item.Listing.Address,
			Price:   item.Listing.Price,
			Success: item.Result.Success,
		}
		if item.Result.Success {
			postID := item.Result.PostID
			dto.PostID = &postID
		} else {
			errMsg := item.Result.Error
			dto.Error = &errMsg
		}
		results = append(results, dto)
	}

	return PublishBatchResponseDTO{
		Summary: BatchSummaryDTO{
			Total:      outcome.Total,
			Successful: outcome.Successful,
			Failed:     outcome.Failed,
		},
		Results: results,
	}
}

type PageInfoDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Followers int    `json:"followers"`
	Likes     int    `json:"likes"`
}

func toPageInfoDTO(info *domain.PageInfo) PageInfoDTO {
	return PageInfoDTO{
		ID:        info.ID,
		Name:      info.Name,
		Followers: info.Followers,
		Likes:     info.Likes,
	}
}
