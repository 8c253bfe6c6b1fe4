package fetch

import (
	"context"

	"github.com/ytget/yt-grabber/internal/model"
)

// Fetcher defines the interface for the download service.
type Fetcher interface {
	SetEventCallback(func(*model.DownloadTask, model.ProgressEvent))
	Start(url string, plan model.DownloadPlan) (*model.DownloadTask, error)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	Finished(id string) bool
	Outcome(id string) (model.Outcome, bool)
}

// Engine is the external fetch+transcode capability. Fetch blocks until the
// plan completes, invoking onProgress for each sampled engine report, and
// returns a best-effort path hint for the resulting file.
type Engine interface {
	Fetch(ctx context.Context, url string, plan model.DownloadPlan, onProgress func(model.ProgressEvent)) (string, error)
}
