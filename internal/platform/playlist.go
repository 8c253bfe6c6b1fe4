package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-grabber/internal/model"
)

// Timeout constants
const (
	DefaultPlaylistTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	VideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistService expands a playlist-shaped resolve into its entries so the
// shell can show more than a bare count. Downloads are never compiled from
// playlist entries.
type PlaylistService struct {
	timeout time.Duration
}

// NewPlaylistService creates a new playlist service
func NewPlaylistService() *PlaylistService {
	return &PlaylistService{
		timeout: DefaultPlaylistTimeout,
	}
}

// SetTimeout sets the timeout for playlist listing operations
func (p *PlaylistService) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Expand lists the entries of a playlist URL.
func (p *PlaylistService) Expand(ctx context.Context, url string) (*model.PlaylistSummary, error) {
	if !p.isPlaylistURL(url) {
		return nil, fmt.Errorf("not a playlist URL: %s", url)
	}

	playlistID := p.extractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist items: %w", err)
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, model.PlaylistEntry{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(VideoURLTemplate, it.VideoID),
		})
	}

	return &model.PlaylistSummary{
		ID:      playlistID,
		Title:   playlistID,
		URL:     url,
		Count:   len(entries),
		Entries: entries,
	}, nil
}

// isPlaylistURL checks if the URL carries a playlist parameter
func (p *PlaylistService) isPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// extractPlaylistID extracts the playlist ID from various URL formats
func (p *PlaylistService) extractPlaylistID(url string) string {
	if strings.Contains(url, PlaylistParam) {
		parts := strings.Split(url, PlaylistParam)
		if len(parts) > 1 {
			playlistPart := parts[1]
			if strings.Contains(playlistPart, ParamSeparator) {
				playlistPart = strings.Split(playlistPart, ParamSeparator)[0]
			}
			return playlistPart
		}
	}
	return ""
}
