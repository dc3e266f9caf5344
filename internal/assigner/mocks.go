package assigner

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockMinter struct {
	mock.Mock
}

func (m *MockMinter) Mint(now time.Time) (string, error) {
	args := m.Called(now)
	return args.String(0), args.Error(1)
}

type MockExchanger struct {
	mock.Mock
}

func (m *MockExchanger) Exchange(ctx context.Context, appJWT string, installationID int64) (string, error) {
	args := m.Called(ctx, appJWT, installationID)
	return args.String(0), args.Error(1)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, token, owner, repo string, number int) (string, string, string, error) {
	args := m.Called(ctx, token, owner, repo, number)
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

type MockRequester struct {
	mock.Mock
}

func (m *MockRequester) RequestReview(ctx context.Context, token, prID, reviewerID string) error {
	args := m.Called(ctx, token, prID, reviewerID)
	return args.Error(0)
}
