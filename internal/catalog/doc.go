package catalog

// Package catalog normalizes the raw rendition list of one resolved video
// into a curated, deduplicated menu of download choices. Malformed
// individual renditions are dropped silently; only whole-request failures
// propagate to the caller.
