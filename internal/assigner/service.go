// Package assigner routes authenticated webhook events and orchestrates the
// reviewer assignment pipeline: mint an app JWT, exchange it for an
// installation token, resolve a reviewer candidate and request the review.
package assigner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ashphy/reviewer-auto-assign/internal/models"
)

// Outcome is the terminal result of routing one webhook event.
type Outcome string

const (
	// OutcomeIgnored covers every event the service does not act on,
	// including malformed payloads.
	OutcomeIgnored Outcome = "ignored"

	// OutcomeAssigned means a reviewer was requested on the pull request.
	OutcomeAssigned Outcome = "assigned"

	// OutcomeNoCandidate means the pull request matched but neither
	// suggested reviewers nor assignable users exist. Not an error.
	OutcomeNoCandidate Outcome = "no_candidate"

	// OutcomeFailed means a downstream call failed. The failure is logged
	// and the webhook is still acknowledged.
	OutcomeFailed Outcome = "failed"
)

// CredentialMinter produces a fresh signed app credential.
type CredentialMinter interface {
	Mint(now time.Time) (string, error)
}

// TokenExchanger redeems an app credential for an installation token.
type TokenExchanger interface {
	Exchange(ctx context.Context, appJWT string, installationID int64) (string, error)
}

// ReviewerResolver picks a reviewer candidate for a pull request. An empty
// reviewerID with a nil error means no candidate exists.
type ReviewerResolver interface {
	Resolve(ctx context.Context, token, owner, repo string, number int) (prID, reviewerID, reviewerLogin string, err error)
}

// ReviewRequester assigns the reviewer; it must be a no-op for an empty
// reviewerID.
type ReviewRequester interface {
	RequestReview(ctx context.Context, token, prID, reviewerID string) error
}

// Service wires the pipeline together. It holds no per-request state; every
// inbound event runs the full credential chain from scratch.
type Service struct {
	minter    CredentialMinter
	exchanger TokenExchanger
	resolver  ReviewerResolver
	requester ReviewRequester

	log *zap.Logger
}

func NewService(
	minter CredentialMinter,
	exchanger TokenExchanger,
	resolver ReviewerResolver,
	requester ReviewRequester,
	log *zap.Logger,
) *Service {
	return &Service{
		minter:    minter,
		exchanger: exchanger,
		resolver:  resolver,
		requester: requester,
		log:       log,
	}
}

// Route dispatches an authenticated webhook event. Only a pull_request
// "opened" event with no reviewers already requested triggers assignment;
// everything else is ignored. Route never fails the request: downstream
// errors are logged and reported as OutcomeFailed.
func (s *Service) Route(ctx context.Context, eventType string, p models.WebhookPayload) Outcome {
	if eventType != "pull_request" || p.Action != "opened" {
		return OutcomeIgnored
	}
	if len(p.PullRequest.RequestedReviewers) > 0 {
		return OutcomeIgnored
	}
	// An unexpected payload shape degrades to a no-op rather than an error.
	if p.Repository.Owner.Login == "" || p.Repository.Name == "" || p.PullRequest.Number == 0 {
		return OutcomeIgnored
	}

	return s.assign(ctx, p)
}

func (s *Service) assign(ctx context.Context, p models.WebhookPayload) Outcome {
	log := s.log.With(
		zap.String("owner", p.Repository.Owner.Login),
		zap.String("repo", p.Repository.Name),
		zap.Int("pr_number", p.PullRequest.Number),
	)

	appJWT, err := s.minter.Mint(time.Now())
	if err != nil {
		log.Error("failed to mint app credential", zap.Error(err))
		return OutcomeFailed
	}

	token, err := s.exchanger.Exchange(ctx, appJWT, p.Installation.ID)
	if err != nil {
		log.Error("failed to exchange installation token", zap.Error(err))
		return OutcomeFailed
	}

	prID, reviewerID, reviewerLogin, err := s.resolver.Resolve(
		ctx, token, p.Repository.Owner.Login, p.Repository.Name, p.PullRequest.Number)
	if err != nil {
		log.Error("failed to resolve reviewer candidates", zap.Error(err))
		return OutcomeFailed
	}

	if err := s.requester.RequestReview(ctx, token, prID, reviewerID); err != nil {
		log.Error("failed to request review", zap.Error(err), zap.String("reviewer", reviewerLogin))
		return OutcomeFailed
	}

	if reviewerID == "" {
		log.Info("no reviewer candidate available")
		return OutcomeNoCandidate
	}

	log.Info("reviewer assigned", zap.String("reviewer", reviewerLogin))
	return OutcomeAssigned
}
