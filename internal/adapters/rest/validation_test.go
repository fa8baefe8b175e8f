package rest

import (
	"encoding/json"
	"testing"
)

func validRaw() json.RawMessage {
	return json.RawMessage(`{"address":"1 Main St","price":"450000","city":"Springfield"}`)
}

func TestValidateBatchRequestDefaultDelay(t *testing.T) {
	req := &PublishBatchRequestDTO{Listings: []json.RawMessage{validRaw()}}

	delayMs, invalid, err := validateBatchRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invalid) != 0 {
		t.Fatalf("unexpected invalid listings: %+v", invalid)
	}
	if delayMs != defaultDelayMs {
		t.Errorf("expected default delay %d, got %d", defaultDelayMs, delayMs)
	}
}

func TestValidateBatchRequestDelayBounds(t *testing.T) {
	for _, delay := range []int{minDelayMs, maxDelayMs} {
		d := delay
		req := &PublishBatchRequestDTO{Listings: []json.RawMessage{validRaw()}, DelayBetweenPosts: &d}
		got, _, err := validateBatchRequest(req)
		if err != nil {
			t.Errorf("delay %d must be accepted: %v", d, err)
		}
		if got != d {
			t.Errorf("expected delay %d, got %d", d, got)
		}
	}

	for _, delay := range []int{minDelayMs - 1, maxDelayMs + 1, 0, -5000} {
		d := delay
		req := &PublishBatchRequestDTO{Listings: []json.RawMessage{validRaw()}, DelayBetweenPosts: &d}
		if _, _, err := validateBatchRequest(req); err == nil {
			t.Errorf("delay %d must be rejected", d)
		}
	}
}

func TestValidateBatchRequestBatchBounds(t *testing.T) {
	if _, _, err := validateBatchRequest(&PublishBatchRequestDTO{}); err == nil {
		t.Error("empty batch must be rejected")
	}

	listings := make([]json.RawMessage, maxBatchSize)
	for i := range listings {
		listings[i] = validRaw()
	}
	if _, _, err := validateBatchRequest(&PublishBatchRequestDTO{Listings: listings}); err != nil {
		t.Errorf("batch of %d must be accepted: %v", maxBatchSize, err)
	}

	listings = append(listings, validRaw())
	if _, _, err := validateBatchRequest(&PublishBatchRequestDTO{Listings: listings}); err == nil {
		t.Errorf("batch of %d must be rejected", maxBatchSize+1)
	}
}

func TestValidateBatchRequestReportsEveryInvalidIndex(t *testing.T) {
	req := &PublishBatchRequestDTO{Listings: []json.RawMessage{
		validRaw(),
		json.RawMessage(`{"price":"450000","city":"Springfield"}`),
		json.RawMessage(`{"address":"3 Main St","price":"450000","city":"Springfield","sqft":50001}`),
	}}

	_, invalid, err := validateBatchRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invalid) != 2 {
		t.Fatalf("expected 2 invalid listings, got %+v", invalid)
	}
	if invalid[0].Index != 1 || invalid[1].Index != 2 {
		t.Errorf("expected indexes 1 and 2, got %+v", invalid)
	}
	for _, item := range invalid {
		if item.Error == "" {
			t.Errorf("index %d: expected non-empty error", item.Index)
		}
	}
}
