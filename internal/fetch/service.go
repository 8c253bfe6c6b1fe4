package fetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-grabber/internal/model"
)

// Task ID constants
const (
	TaskIDPrefix = "fetch-"
)

// Service runs download plans on background workers, bounded by a parallel
// limit. A single failed attempt terminates its plan; whether the user
// retries is the caller's decision.
type Service struct {
	tasks       map[string]*model.DownloadTask
	tasksMutex  sync.RWMutex
	engine      Engine
	maxParallel int
	activeCount int
	onEvent     func(*model.DownloadTask, model.ProgressEvent)
}

// NewService creates a new download service backed by the given engine
func NewService(engine Engine, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:       make(map[string]*model.DownloadTask),
		engine:      engine,
		maxParallel: maxParallel,
	}
}

// SetEventCallback sets the callback invoked for every progress event
func (s *Service) SetEventCallback(callback func(*model.DownloadTask, model.ProgressEvent)) {
	s.onEvent = callback
}

// Start queues one plan for execution and returns its task handle
// immediately. The handle is polled through Finished and Outcome; there is
// no mid-fetch cancellation.
func (s *Service) Start(url string, plan model.DownloadPlan) (*model.DownloadTask, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL")
	}
	if plan.Kind == "" {
		return nil, fmt.Errorf("empty download plan")
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       url,
		Plan:      plan,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task

	if s.activeCount < s.maxParallel {
		s.activeCount++
		go s.runTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// Finished reports whether a task reached a terminal state
func (s *Service) Finished(id string) bool {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return false
	}
	return task.Status.IsFinished()
}

// Outcome returns the terminal outcome of a finished task
func (s *Service) Outcome(id string) (model.Outcome, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	task, exists := s.tasks[id]
	if !exists || !task.Status.IsFinished() {
		return model.Outcome{}, false
	}
	return task.Outcome, true
}

// runTask executes one plan to completion on its own worker.
func (s *Service) runTask(task *model.DownloadTask) {
	defer func() {
		// Faults in orchestration code must still deliver exactly one
		// terminal outcome.
		if r := recover(); r != nil {
			s.finishTask(task, internalOutcome(r))
		}

		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		s.startNextPendingTask()
	}()

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusRunning
	s.tasksMutex.Unlock()

	onProgress := func(ev model.ProgressEvent) {
		s.tasksMutex.Lock()
		task.Progress = ev.Fraction
		task.DownloadedBytes = ev.DownloadedBytes
		task.TotalBytes = ev.TotalBytes
		if ev.Speed != "" {
			task.Speed = ev.Speed
		}
		s.tasksMutex.Unlock()

		s.notifyEvent(task, ev)
	}

	pathHint, err := s.engine.Fetch(context.Background(), task.URL, task.Plan, onProgress)
	if err != nil {
		s.notifyEvent(task, model.ProgressEvent{
			Phase:    model.PhaseFailed,
			Fraction: s.currentProgress(task),
		})
		s.finishTask(task, failureOutcome(err))
		return
	}

	// Completion is forced to 1.0 once the engine returns cleanly,
	// regardless of the last sampled report.
	s.tasksMutex.Lock()
	task.Progress = 1.0
	total := task.TotalBytes
	downloaded := task.DownloadedBytes
	s.tasksMutex.Unlock()

	s.notifyEvent(task, model.ProgressEvent{
		Phase:           model.PhaseFinished,
		Fraction:        1.0,
		DownloadedBytes: downloaded,
		TotalBytes:      total,
	})
	s.finishTask(task, model.Outcome{
		OK:       true,
		PathHint: pathHint,
		Message:  "Download Successful",
	})
}

// finishTask records the single terminal outcome of a task.
func (s *Service) finishTask(task *model.DownloadTask, outcome model.Outcome) {
	s.tasksMutex.Lock()
	if task.Status.IsFinished() {
		s.tasksMutex.Unlock()
		return
	}
	if outcome.OK {
		task.Status = model.TaskStatusSucceeded
	} else {
		task.Status = model.TaskStatusFailed
	}
	task.Outcome = outcome
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			s.activeCount++
			go s.runTask(task)
			return
		}
	}
}

// currentProgress reads the last known completion fraction of a task.
func (s *Service) currentProgress(task *model.DownloadTask) float64 {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return task.Progress
}

// notifyEvent calls the event callback if set
func (s *Service) notifyEvent(task *model.DownloadTask, ev model.ProgressEvent) {
	if s.onEvent != nil {
		s.onEvent(task, ev)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better
// uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
