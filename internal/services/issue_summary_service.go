package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/domain/models"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/domain/ports"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/infrastructure/tickets/jira"
	"github.com/Tomas-vilte/jira-issue-mcp/internal/logger"
)

var ErrEmptyIssueKey = errors.New("issue key is required")

var _ ports.IssueSummaryService = (*IssueSummaryService)(nil)

type IssueSummaryService struct {
	tracker ports.IssueTracker
}

func NewIssueSummaryService(tracker ports.IssueTracker) *IssueSummaryService {
	return &IssueSummaryService{tracker: tracker}
}

// GetIssueSummary fetches one issue and reduces it to its summary record.
func (s *IssueSummaryService) GetIssueSummary(ctx context.Context, issueKey string) (*models.IssueSummary, error) {
	issueKey = strings.TrimSpace(issueKey)
	if issueKey == "" {
		return nil, ErrEmptyIssueKey
	}

	ctx = logger.WithIssueKey(ctx, issueKey)
	start := time.Now()

	raw, err := s.tracker.GetIssue(ctx, issueKey)
	if err != nil {
		logger.Error(ctx, "failed to fetch issue", err)
		return nil, fmt.Errorf("error fetching issue %s: %w", issueKey, err)
	}

	summary := jira.Summarize(issueKey, raw)
	logger.Info(ctx, "issue summarized",
		"duration_ms", time.Since(start).Milliseconds(),
		"comments", len(summary.Comments))

	return &summary, nil
}
