package timeout

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	ctx := context.Background()

	got, err := Run(ctx, time.Second, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestRunError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := Run(ctx, time.Second, func(ctx context.Context) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
}

func TestRunTimeout(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	defer close(release)

	_, err := Run(ctx, 10*time.Millisecond, func(ctx context.Context) (int, error) {
		<-release
		return 42, nil
	})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("got %v, want ErrTimeout", err)
	}
}

func TestRunLateResultDiscarded(t *testing.T) {
	ctx := context.Background()
	done := make(chan struct{})

	_, err := Run(ctx, 10*time.Millisecond, func(ctx context.Context) (int, error) {
		defer close(done)
		time.Sleep(50 * time.Millisecond)
		return 42, nil
	})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("got %v, want ErrTimeout", err)
	}

	// The operation must be able to finish after abandonment without
	// blocking on the result channel.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("abandoned operation never completed")
	}
}

func TestRunContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	release := make(chan struct{})
	defer close(release)

	_, err := Run(ctx, time.Second, func(ctx context.Context) (int, error) {
		<-release
		return 0, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
