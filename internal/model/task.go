package model

import (
	"strings"
	"time"
)

// DownloadTask is the handle for one in-flight or finished download plan.
// The fetch service owns all mutations; callers poll Status/Outcome through
// the service.
type DownloadTask struct {
	ID              string
	URL             string
	Plan            DownloadPlan
	Status          TaskStatus
	Progress        float64 // 0.0 to 1.0
	DownloadedBytes int64
	TotalBytes      int64  // 0 if unknown
	Speed           string // human readable speed (e.g., "1.2MB/s")
	Outcome         Outcome
	StartedAt       time.Time
	FinishedAt      time.Time
}

// GetDisplayName returns the output filename if known, otherwise the URL.
func (dt *DownloadTask) GetDisplayName() string {
	if dt.Outcome.PathHint != "" {
		// Extract just the filename without path (support both / and \ separators)
		parts := strings.FieldsFunc(dt.Outcome.PathHint, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return dt.URL
}
