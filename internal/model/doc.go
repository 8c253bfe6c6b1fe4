package model

// Package model defines domain data structures used across the app: raw
// resolver records, classified renditions, catalogs, download plans,
// progress events, and status enums. Catalog structures are read-only after
// construction; only the download task carries explicit state transitions.
