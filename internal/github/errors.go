package github

import "errors"

var (
	// ErrQueryFailed means the reviewer candidate query could not be
	// executed or returned a schema error.
	ErrQueryFailed = errors.New("reviewer query failed")

	// ErrMutationFailed means the review request mutation was rejected.
	ErrMutationFailed = errors.New("review request mutation failed")
)
