package gemini

import (
	"context"
	"errors"
	"testing"
)

func TestGenerateWithRetryRecovers(t *testing.T) {
	calls := 0
	attempt := func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("connection reset")
		}
		return "all good", nil
	}

	text, err := GenerateWithRetry(context.Background(), nil, attempt)
	if err != nil {
		t.Fatalf("GenerateWithRetry() error = %v", err)
	}
	if text != "all good" {
		t.Errorf("text = %q, want %q", text, "all good")
	}
	if calls != 3 {
		t.Errorf("attempts = %d, want 3", calls)
	}
}

func TestGenerateWithRetryExhausted(t *testing.T) {
	calls := 0
	attempt := func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("upstream timeout")
	}

	_, err := GenerateWithRetry(context.Background(), nil, attempt)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
	if calls != maxAttempts {
		t.Errorf("attempts = %d, want %d", calls, maxAttempts)
	}
}

func TestGenerateWithRetryBlockedNotRetried(t *testing.T) {
	calls := 0
	attempt := func(ctx context.Context) (string, error) {
		calls++
		return "", ErrBlocked
	}

	_, err := GenerateWithRetry(context.Background(), nil, attempt)
	if !errors.Is(err, ErrBlocked) {
		t.Fatalf("error = %v, want ErrBlocked", err)
	}
	if calls != 1 {
		t.Errorf("attempts = %d, want 1 (content failures are final)", calls)
	}
}

func TestGenerateWithRetryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempt := func(ctx context.Context) (string, error) {
		cancel()
		return "", errors.New("connection reset")
	}

	_, err := GenerateWithRetry(ctx, nil, attempt)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}
