package fetch

// Package fetch executes download plans against yt-dlp
// (via github.com/lrstanley/go-ytdlp). Each plan runs on its own background
// worker; the service translates engine progress into normalized events and
// engine failures into a typed outcome. No retries happen here; retry is a
// caller policy.
