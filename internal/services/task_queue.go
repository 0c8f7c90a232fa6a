package services

import (
	"encoding/json"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/revolutionrp/community/internal/config"
	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/pkg/logger"
)

const TaskTypeNotify = "submission:notify"

// NotifyTask carries a queued webhook notification. Only the submission id
// travels through the queue; the processor reloads current state.
type NotifyTask struct {
	SubmissionID string `json:"submission_id"`
}

// TaskQueue defines the interface for notification dispatch.
type TaskQueue interface {
	// Enqueue adds a task to the queue
	Enqueue(task *NotifyTask) error
	// IsAsync returns true if the queue processes tasks out of process
	IsAsync() bool
	// Close gracefully shuts down the queue
	Close() error
}

var (
	globalTaskQueue TaskQueue
	taskQueueOnce   sync.Once
)

// InitTaskQueue initializes the global task queue based on config: a
// Redis-backed asynq queue when enabled, otherwise in-process dispatch.
func InitTaskQueue(cfg *config.Config) TaskQueue {
	taskQueueOnce.Do(func() {
		if cfg.Redis.Enabled {
			queue, err := NewAsyncQueue(&cfg.Redis)
			if err != nil {
				logger.Infof("[TaskQueue] Redis unavailable, falling back to sync mode: %v", err)
				globalTaskQueue = NewSyncQueue()
			} else {
				logger.Infof("[TaskQueue] Async queue initialized with Redis at %s", cfg.Redis.Addr)
				globalTaskQueue = queue
			}
		} else {
			logger.Infof("[TaskQueue] Sync queue initialized (Redis disabled)")
			globalTaskQueue = NewSyncQueue()
		}
	})
	return globalTaskQueue
}

// GetTaskQueue returns the initialized global queue, or nil before init.
func GetTaskQueue() TaskQueue {
	return globalTaskQueue
}

// AsyncQueue implements TaskQueue using asynq (Redis-based).
type AsyncQueue struct {
	client *asynq.Client
}

// NewAsyncQueue creates a new Redis-based async queue.
func NewAsyncQueue(cfg *config.RedisConfig) (*AsyncQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)

	// Verify the connection before committing to async mode
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()
	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncQueue{client: client}, nil
}

func (q *AsyncQueue) Enqueue(task *NotifyTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}

	t := asynq.NewTask(TaskTypeNotify, payload)
	info, err := q.client.Enqueue(t,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	logger.Infof("[TaskQueue] Enqueued task %s for submission %s", info.ID, task.SubmissionID)
	return nil
}

func (q *AsyncQueue) IsAsync() bool { return true }

func (q *AsyncQueue) Close() error {
	return q.client.Close()
}

// SyncQueue implements TaskQueue with in-process goroutine dispatch.
// Used when Redis is disabled; delivery remains fire-and-forget.
type SyncQueue struct {
	processor func(*NotifyTask) error
}

func NewSyncQueue() *SyncQueue {
	return &SyncQueue{}
}

// SetProcessor sets the function invoked for each enqueued task.
func (q *SyncQueue) SetProcessor(processor func(*NotifyTask) error) {
	q.processor = processor
}

func (q *SyncQueue) Enqueue(task *NotifyTask) error {
	if q.processor == nil {
		return nil
	}
	go func() {
		if err := q.processor(task); err != nil {
			logger.Errorf("[TaskQueue] Notification failed for submission %s: %v", task.SubmissionID, err)
		}
	}()
	return nil
}

func (q *SyncQueue) IsAsync() bool { return false }

func (q *SyncQueue) Close() error { return nil }

// QueueNotifier adapts a TaskQueue to the SubmissionService's Notifier.
// Enqueue failures are logged and swallowed: webhook delivery must never
// fail the submit operation.
type QueueNotifier struct {
	queue TaskQueue
}

func NewQueueNotifier(queue TaskQueue) *QueueNotifier {
	return &QueueNotifier{queue: queue}
}

func (n *QueueNotifier) NotifySubmission(form *models.ApplicationForm, sub *models.ApplicationSubmission) {
	if err := n.queue.Enqueue(&NotifyTask{SubmissionID: sub.ID}); err != nil {
		logger.Errorf("[TaskQueue] Failed to enqueue notification for submission %s: %v", sub.ID, err)
	}
}
