package plan

// Package plan compiles a user-selected catalog entry into a concrete
// download plan: which stream selector to request and what post-processing
// the engine must perform.
