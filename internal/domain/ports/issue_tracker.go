package ports

import (
	"context"
	"encoding/json"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/domain/models"
)

// IssueTracker fetches raw issue documents from the tracker.
type IssueTracker interface {
	GetIssue(ctx context.Context, issueKey string) (json.RawMessage, error)
}

type IssueSummaryService interface {
	GetIssueSummary(ctx context.Context, issueKey string) (*models.IssueSummary, error)
}
