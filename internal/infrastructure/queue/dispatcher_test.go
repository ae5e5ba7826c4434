package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

type recordingContactService struct {
	mu     sync.Mutex
	inputs []ports.ContactInput
	done   chan struct{}
	want   int
}

func newRecordingService(want int) *recordingContactService {
	return &recordingContactService{done: make(chan struct{}), want: want}
}

func (s *recordingContactService) Submit(_ context.Context, in ports.ContactInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = append(s.inputs, in)
	if len(s.inputs) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingContactService) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for submissions to be processed")
	}
}

func TestDispatcher_ProcessesSubmissions(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(2, 8, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 3; i++ {
		if !d.Enqueue(ports.ContactInput{Email: "a@example.com", Message: "m"}) {
			t.Fatal("enqueue must succeed with a free buffer")
		}
	}
	svc.wait(t)
}

// Submissions from one sender always land on the same worker, preserving order.
func TestDispatcher_SameSenderSameShard(t *testing.T) {
	d := NewDispatcher(4, 8, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("layla@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("layla@example.com"); got != first {
			t.Fatalf("shard changed between calls: %d vs %d", first, got)
		}
	}
}

func TestDispatcher_FullQueueRejects(t *testing.T) {
	// One worker, capacity one, never started: the second enqueue must fail
	// instead of blocking.
	d := NewDispatcher(1, 1, newRecordingService(0), zerolog.Nop())

	if !d.Enqueue(ports.ContactInput{Email: "a@example.com"}) {
		t.Fatal("first enqueue must fit")
	}
	if d.Enqueue(ports.ContactInput{Email: "a@example.com"}) {
		t.Fatal("second enqueue must be rejected when the buffer is full")
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	svc := newRecordingService(1)
	d := NewDispatcher(1, 4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(ports.ContactInput{Email: "a@example.com"})
	svc.wait(t)
	cancel()

	// Give the worker a moment to observe cancellation, then verify nothing
	// else is consumed.
	time.Sleep(50 * time.Millisecond)
	d.Enqueue(ports.ContactInput{Email: "a@example.com"})
	time.Sleep(50 * time.Millisecond)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.inputs) != 1 {
		t.Fatalf("worker must stop consuming after cancel, got %d submissions", len(svc.inputs))
	}
}
