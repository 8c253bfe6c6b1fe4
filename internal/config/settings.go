package config

import (
	"github.com/ytget/yt-grabber/internal/platform"
)

// Default values
const (
	DefaultMaxParallel = 2
	MinMaxParallel     = 1
	MaxMaxParallel     = 10

	// FallbackDownloadDir is used when no home directory can be resolved.
	FallbackDownloadDir = "downloads"
)

// Settings manages application configuration
type Settings struct {
	downloadDir string
	maxParallel int
}

// NewSettings creates a new settings manager with defaults applied
func NewSettings() *Settings {
	return &Settings{
		maxParallel: DefaultMaxParallel,
	}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	if s.downloadDir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.downloadDir = defaultDir
	}
	return s.downloadDir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	if dir == "" {
		return
	}
	s.downloadDir = dir
}

// GetMaxParallelDownloads returns the maximum number of parallel downloads
func (s *Settings) GetMaxParallelDownloads() int {
	if s.maxParallel <= 0 {
		s.maxParallel = DefaultMaxParallel
	}
	return s.maxParallel
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Settings) SetMaxParallelDownloads(count int) {
	if count < MinMaxParallel {
		count = MinMaxParallel
	}
	if count > MaxMaxParallel {
		count = MaxMaxParallel
	}
	s.maxParallel = count
}
