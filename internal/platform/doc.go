package platform

// Package platform contains external tooling glue: the media resolver
// boundary over yt-dlp, playlist entry listing, and filesystem helpers.
