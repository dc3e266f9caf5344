package models

// User is a GitHub account referenced by a webhook payload.
type User struct {
	Login string `json:"login"`
}

// PullRequest is the subset of the webhook pull_request object we care about.
type PullRequest struct {
	Number             int    `json:"number"`
	Title              string `json:"title"`
	User               User   `json:"user"`
	RequestedReviewers []User `json:"requested_reviewers"`
}

// Repository identifies the repository a webhook event belongs to.
type Repository struct {
	Name  string `json:"name"`
	Owner User   `json:"owner"`
}

// Installation carries the GitHub App installation the event was delivered
// for. The installation id scopes the access token we exchange for.
type Installation struct {
	ID int64 `json:"id"`
}

// WebhookPayload is the decoded body of a GitHub webhook delivery. Fields
// missing from the payload stay at their zero values; routing treats such
// payloads as ignorable rather than failing the request.
type WebhookPayload struct {
	Action       string       `json:"action"`
	PullRequest  PullRequest  `json:"pull_request"`
	Repository   Repository   `json:"repository"`
	Installation Installation `json:"installation"`
}
