package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/revolutionrp/community/internal/models"
)

func TestSyncQueue_Dispatch(t *testing.T) {
	queue := NewSyncQueue()

	var mu sync.Mutex
	processed := make([]string, 0)
	done := make(chan struct{}, 1)

	queue.SetProcessor(func(task *NotifyTask) error {
		mu.Lock()
		processed = append(processed, task.SubmissionID)
		mu.Unlock()
		done <- struct{}{}
		return nil
	})

	if queue.IsAsync() {
		t.Error("SyncQueue must report IsAsync() == false")
	}
	if err := queue.Enqueue(&NotifyTask{SubmissionID: "sub-1"}); err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("processor was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(processed) != 1 || processed[0] != "sub-1" {
		t.Errorf("processed = %v", processed)
	}
}

func TestSyncQueue_NoProcessor(t *testing.T) {
	queue := NewSyncQueue()
	if err := queue.Enqueue(&NotifyTask{SubmissionID: "sub-1"}); err != nil {
		t.Errorf("Enqueue() without processor error = %v, expected nil", err)
	}
}

func TestSyncQueue_ProcessorError(t *testing.T) {
	queue := NewSyncQueue()
	done := make(chan struct{}, 1)
	queue.SetProcessor(func(task *NotifyTask) error {
		done <- struct{}{}
		return errors.New("delivery failed")
	})

	// Processor failure is logged, never surfaced to the enqueuer.
	if err := queue.Enqueue(&NotifyTask{SubmissionID: "sub-1"}); err != nil {
		t.Errorf("Enqueue() error = %v, expected nil", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("processor was not invoked")
	}
}

type failingQueue struct{}

func (failingQueue) Enqueue(*NotifyTask) error { return errors.New("queue down") }
func (failingQueue) IsAsync() bool             { return true }
func (failingQueue) Close() error              { return nil }

func TestQueueNotifier_SwallowsEnqueueErrors(t *testing.T) {
	notifier := NewQueueNotifier(failingQueue{})

	form := &models.ApplicationForm{ID: "form-1"}
	sub := &models.ApplicationSubmission{ID: "sub-1", FormID: "form-1"}

	// Must not panic or propagate the failure.
	notifier.NotifySubmission(form, sub)
}

func TestQueueNotifier_Enqueues(t *testing.T) {
	queue := NewSyncQueue()
	got := make(chan string, 1)
	queue.SetProcessor(func(task *NotifyTask) error {
		got <- task.SubmissionID
		return nil
	})

	notifier := NewQueueNotifier(queue)
	notifier.NotifySubmission(
		&models.ApplicationForm{ID: "form-1"},
		&models.ApplicationSubmission{ID: "sub-9", FormID: "form-1"},
	)

	select {
	case id := <-got:
		if id != "sub-9" {
			t.Errorf("SubmissionID = %q, expected sub-9", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not dispatched")
	}
}
