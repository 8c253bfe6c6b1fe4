package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-grabber/internal/model"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// ResolverService fetches raw rendition metadata for a URL through yt-dlp
// without downloading anything. The call blocks until yt-dlp returns; there
// is no cancellation once issued beyond the context deadline.
type ResolverService struct {
	timeout time.Duration
}

// NewResolverService creates a new resolver service
func NewResolverService() *ResolverService {
	return &ResolverService{
		timeout: DefaultResolveTimeout,
	}
}

// SetTimeout sets the timeout for resolve operations
func (r *ResolverService) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// Resolve extracts the raw rendition list for a single video, or the flat
// entry list for a playlist. Resolver failures surface verbatim; they are
// never retried here.
func (r *ResolverService) Resolve(ctx context.Context, url string) (*model.RawInfo, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("empty URL")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	dl := ytdlp.New().
		Quiet().
		SkipDownload().
		DumpSingleJSON().
		FlatPlaylist()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", url, err)
	}

	info, err := parseRawInfo([]byte(result.Stdout))
	if err != nil {
		return nil, err
	}
	if info.WebpageURL == "" {
		info.WebpageURL = url
	}
	return info, nil
}

// parseRawInfo decodes a yt-dlp single-JSON dump into the raw info model.
func parseRawInfo(data []byte) (*model.RawInfo, error) {
	var info model.RawInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse resolver output: %w", err)
	}
	return &info, nil
}
