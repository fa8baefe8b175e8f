package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"facebook-publisher-service/internal/core/domain"
)

// stubPublisher — управляемая реализация FacebookPublisherPort для тестов.
type stubPublisher struct {
	// failAll — все публикации завершаются ошибкой.
	failAll bool
	// failIndexes — какие по счету вызовы должны провалиться.
	failIndexes map[int]bool
	// panicIndex — на каком по счету вызове паниковать (-1 — никогда).
	panicIndex int

	calls      int
	imageCalls int
	messages   []string
}

func newStubPublisher() *stubPublisher {
	return &stubPublisher{panicIndex: -1, failIndexes: map[int]bool{}}
}

func (s *stubPublisher) publishResult() domain.PublishResult {
	idx := s.calls
	s.calls++
	if idx == s.panicIndex {
		panic("stub publisher blew up")
	}
	if s.failAll || s.failIndexes[idx] {
		return domain.PublishResult{Success: false, Error: "stubbed publish failure"}
	}
	return domain.PublishResult{Success: true, PostID: fmt.Sprintf("post_%d", idx)}
}

func (s *stubPublisher) PublishMessage(ctx context.Context, message string) domain.PublishResult {
	s.messages = append(s.messages, message)
	return s.publishResult()
}

func (s *stubPublisher) PublishWithImage(ctx context.Context, message string, imageURL string) domain.PublishResult {
	s.imageCalls++
	s.messages = append(s.messages, message)
	return s.publishResult()
}

func (s *stubPublisher) TestConnection(ctx context.Context) domain.ConnectionStatus {
	return domain.ConnectionStatus{Connected: true}
}

func (s *stubPublisher) GetPageInfo(ctx context.Context) (*domain.PageInfo, error) {
	return &domain.PageInfo{}, nil
}

func makeListings(n int) []domain.Listing {
	listings := make([]domain.Listing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, domain.Listing{
			Address:   fmt.Sprintf("%d Main St", i+1),
			Price:     "450000",
			City:      "Springfield",
			Bedrooms:  3,
			Bathrooms: 2,
		})
	}
	return listings
}

func TestPublishBatchAllSucceed(t *testing.T) {
	publisher := newStubPublisher()
	uc := NewPublishBatchUseCase(publisher)

	listings := makeListings(3)
	outcome := uc.Execute(context.Background(), listings, time.Millisecond)

	if outcome.Total != 3 || outcome.Successful != 3 || outcome.Failed != 0 {
		t.Fatalf("unexpected counts: total=%d successful=%d failed=%d", outcome.Total, outcome.Successful, outcome.Failed)
	}
	if len(outcome.Results) != len(listings) {
		t.Fatalf("expected %d results, got %d", len(listings), len(outcome.Results))
	}
	for i, item := range outcome.Results {
		if item.Listing.Address != listings[i].Address {
			t.Errorf("result %d out of order: got address %q", i, item.Listing.Address)
		}
		if !item.Result.Success || item.Result.PostID == "" {
			t.Errorf("result %d: expected success with post id, got %+v", i, item.Result)
		}
	}
}

func TestPublishBatchAllFail(t *testing.T) {
	publisher := newStubPublisher()
	publisher.failAll = true
	uc := NewPublishBatchUseCase(publisher)

	outcome := uc.Execute(context.Background(), makeListings(4), time.Millisecond)

	if outcome.Failed != 4 || outcome.Successful != 0 {
		t.Fatalf("unexpected counts: %+v", outcome)
	}
	if outcome.Successful+outcome.Failed != outcome.Total {
		t.Fatalf("counts invariant broken: %+v", outcome)
	}
	for i, item := range outcome.Results {
		if item.Result.Success {
			t.Errorf("result %d: expected failure", i)
		}
		if item.Result.Error == "" {
			t.Errorf("result %d: expected non-empty error", i)
		}
	}
}

func TestPublishBatchMixedPreservesOrder(t *testing.T) {
	publisher := newStubPublisher()
	publisher.failIndexes[0] = true // первый падает, второй проходит
	uc := NewPublishBatchUseCase(publisher)

	listings := makeListings(2)
	outcome := uc.Execute(context.Background(), listings, time.Millisecond)

	if outcome.Total != 2 || outcome.Successful != 1 || outcome.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", outcome)
	}
	if outcome.Results[0].Result.Success {
		t.Error("first result should be the failed one")
	}
	if !outcome.Results[1].Result.Success {
		t.Error("second result should be the successful one")
	}
	if outcome.Results[0].Listing.Address != listings[0].Address {
		t.Error("results must preserve input order")
	}
}

func TestPublishBatchPanicBecomesSyntheticFailure(t *testing.T) {
	publisher := newStubPublisher()
	publisher.panicIndex = 1
	uc := NewPublishBatchUseCase(publisher)

	outcome := uc.Execute(context.Background(), makeListings(3), time.Millisecond)

	if outcome.Total != 3 {
		t.Fatalf("batch must run to completion, got %+v", outcome)
	}
	if outcome.Successful != 2 || outcome.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", outcome)
	}
	failed := outcome.Results[1].Result
	if failed.Success {
		t.Fatal("panicking item must be recorded as failure")
	}
	if !strings.Contains(failed.Error, "unexpected fault") {
		t.Errorf("expected synthetic fault error, got %q", failed.Error)
	}
}

func TestPublishBatchPacing(t *testing.T) {
	publisher := newStubPublisher()
	uc := NewPublishBatchUseCase(publisher)

	delay := 30 * time.Millisecond
	start := time.Now()
	uc.Execute(context.Background(), makeListings(3), delay)
	elapsed := time.Since(start)

	// Для n элементов суммарная пауза — (n-1) * delay.
	if elapsed < 2*delay {
		t.Errorf("expected at least %v of pacing, elapsed %v", 2*delay, elapsed)
	}
}

func TestPublishBatchSingleItemSkipsDelay(t *testing.T) {
	publisher := newStubPublisher()
	uc := NewPublishBatchUseCase(publisher)

	delay := 300 * time.Millisecond
	start := time.Now()
	outcome := uc.Execute(context.Background(), makeListings(1), delay)
	elapsed := time.Since(start)

	if elapsed >= delay {
		t.Errorf("single item must not wait the inter-post delay, elapsed %v", elapsed)
	}
	if outcome.Total != 1 || outcome.Successful != 1 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestPublishBatchRoutesImageListings(t *testing.T) {
	publisher := newStubPublisher()
	uc := NewPublishBatchUseCase(publisher)

	listings := makeListings(2)
	listings[1].ImageURL = "https://example.com/house.jpg"

	uc.Execute(context.Background(), listings, time.Millisecond)

	if publisher.imageCalls != 1 {
		t.Errorf("expected exactly one photo publish, got %d", publisher.imageCalls)
	}
	if publisher.calls != 2 {
		t.Errorf("expected two publish calls in total, got %d", publisher.calls)
	}
}

func TestPublishBatchFormatsMessages(t *testing.T) {
	publisher := newStubPublisher()
	uc := NewPublishBatchUseCase(publisher)

	uc.Execute(context.Background(), makeListings(1), time.Millisecond)

	if len(publisher.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(publisher.messages))
	}
	if !strings.Contains(publisher.messages[0], "1 Main St") {
		t.Errorf("published message must embed the address:\n%s", publisher.messages[0])
	}
	if !strings.Contains(publisher.messages[0], "$450000") {
		t.Errorf("published message must carry the normalized price:\n%s", publisher.messages[0])
	}
}
