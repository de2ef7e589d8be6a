package fetch

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/xkcd-viewer/internal/model"
)

// TaskIDPrefix prefixes every fetch task ID
const TaskIDPrefix = "fetch-"

// Task is a single in-flight fetch. Number zero requests the latest comic.
type Task struct {
	ID        string
	Number    int
	StartedAt time.Time

	mu         sync.RWMutex
	status     model.TaskStatus
	finishedAt time.Time
	comic      model.Comic
	err        error
	done       chan struct{}
}

// Start launches a fetch on its own goroutine and returns its handle
func Start(ctx context.Context, f Fetcher, number int) *Task {
	task := &Task{
		ID:        generateTaskID(),
		Number:    number,
		StartedAt: time.Now(),
		status:    model.TaskStatusPending,
		done:      make(chan struct{}),
	}

	go task.run(ctx, f)
	return task
}

func (t *Task) run(ctx context.Context, f Fetcher) {
	t.mu.Lock()
	t.status = model.TaskStatusFetching
	t.mu.Unlock()

	var (
		comic model.Comic
		err   error
	)
	if t.Number > 0 {
		comic, err = f.Fetch(ctx, t.Number)
	} else {
		comic, err = f.FetchLatest(ctx)
	}

	t.mu.Lock()
	t.comic = comic
	t.err = err
	t.finishedAt = time.Now()
	if err != nil {
		t.status = model.TaskStatusError
		log.Printf("Fetch task %s failed after %v: %v", t.ID, t.finishedAt.Sub(t.StartedAt), err)
	} else {
		t.status = model.TaskStatusCompleted
	}
	t.mu.Unlock()

	close(t.done)
}

// Done is closed once the task has a result
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task resolves or ctx is done
func (t *Task) Wait(ctx context.Context) (model.Comic, error) {
	select {
	case <-t.done:
		return t.Result()
	case <-ctx.Done():
		return model.Comic{}, ctx.Err()
	}
}

// Result returns the fetched comic or error. Before Done is closed it
// returns the zero comic and a nil error.
func (t *Task) Result() (model.Comic, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.comic, t.err
}

// Status returns the current task status
func (t *Task) Status() model.TaskStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// FinishedAt returns when the task resolved, zero while active
func (t *Task) FinishedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.finishedAt
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return TaskIDPrefix + uuid.NewString()
}
