// Package github talks to the GitHub GraphQL v4 API on behalf of an
// installation. A fresh client is assembled per call from the per-request
// installation token; nothing is shared across requests.
package github

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Client issues the reviewer candidate query and the review request mutation.
type Client struct {
	graphqlURL string
	httpClient *http.Client
}

// NewClient builds a Client against apiBaseURL (e.g. https://api.github.com).
func NewClient(apiBaseURL string, httpClient *http.Client) *Client {
	return &Client{
		graphqlURL: apiBaseURL + "/graphql",
		httpClient: httpClient,
	}
}

// graphql returns a githubv4 client authenticated with the given
// installation token. The oauth2 transport is wrapped by hand so the
// configured client timeout bounds every call; oauth2.NewClient would keep
// only the base transport and drop the timeout.
func (c *Client) graphql(token string) *githubv4.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: c.httpClient.Transport},
		Timeout:   c.httpClient.Timeout,
	}
	return githubv4.NewEnterpriseClient(c.graphqlURL, httpClient)
}

// candidateQuery fetches, in a single round trip, the pull request id, the
// platform-computed suggested reviewers and up to 100 assignable users.
type candidateQuery struct {
	Repository struct {
		PullRequest struct {
			ID                 string
			SuggestedReviewers []struct {
				IsAuthor    bool
				IsCommenter bool
				Reviewer    struct {
					ID    string
					Login string
				}
			}
		} `graphql:"pullRequest(number: $number)"`
		AssignableUsers struct {
			Nodes []struct {
				ID    string
				Login string
			}
		} `graphql:"assignableUsers(first: 100)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// Resolve picks one reviewer for the pull request: uniformly at random from
// the suggested reviewers when there are any, otherwise from the assignable
// users. An empty reviewerID with a nil error means no candidate exists,
// which is a valid terminal outcome rather than a failure.
func (c *Client) Resolve(ctx context.Context, token, owner, repo string, number int) (prID, reviewerID, reviewerLogin string, err error) {
	var q candidateQuery
	vars := map[string]interface{}{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"number": githubv4.Int(number),
	}

	if err := c.graphql(token).Query(ctx, &q, vars); err != nil {
		return "", "", "", fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	pr := q.Repository.PullRequest

	if len(pr.SuggestedReviewers) > 0 {
		pick := pr.SuggestedReviewers[rand.Intn(len(pr.SuggestedReviewers))]
		return pr.ID, pick.Reviewer.ID, pick.Reviewer.Login, nil
	}

	if users := q.Repository.AssignableUsers.Nodes; len(users) > 0 {
		pick := users[rand.Intn(len(users))]
		return pr.ID, pick.ID, pick.Login, nil
	}

	return pr.ID, "", "", nil
}

// RequestReview assigns reviewerID to the pull request. When reviewerID is
// empty it returns immediately without any outbound call.
func (c *Client) RequestReview(ctx context.Context, token, prID, reviewerID string) error {
	if reviewerID == "" {
		return nil
	}

	// The mutated title is only fetched as a success confirmation.
	var m struct {
		RequestReviews struct {
			PullRequest struct {
				Title string
			}
		} `graphql:"requestReviews(input: $input)"`
	}

	input := githubv4.RequestReviewsInput{
		PullRequestID: githubv4.ID(prID),
		UserIDs:       &[]githubv4.ID{githubv4.ID(reviewerID)},
	}

	if err := c.graphql(token).Mutate(ctx, &m, input, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrMutationFailed, err)
	}

	return nil
}
