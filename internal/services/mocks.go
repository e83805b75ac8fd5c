package services

import (
	"context"
	"encoding/json"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockIssueTracker struct {
		mock.Mock
	}

	MockIssueSummaryService struct {
		mock.Mock
	}
)

func (m *MockIssueTracker) GetIssue(ctx context.Context, issueKey string) (json.RawMessage, error) {
	args := m.Called(ctx, issueKey)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *MockIssueSummaryService) GetIssueSummary(ctx context.Context, issueKey string) (*models.IssueSummary, error) {
	args := m.Called(ctx, issueKey)
	summary, _ := args.Get(0).(*models.IssueSummary)
	return summary, args.Error(1)
}
