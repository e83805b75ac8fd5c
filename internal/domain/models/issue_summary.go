package models

// IssueSummary is the flat record returned for a single Jira issue.
// Pointer members serialize as null when the issue does not carry them.
type IssueSummary struct {
	Key            string         `json:"key"`
	EpicKey        *string        `json:"epic_key"`
	HoursLogged    float64        `json:"hours_logged"`
	EstimatedHours *float64       `json:"estimated_hours"`
	Title          *string        `json:"title"`
	Description    *string        `json:"description"`
	Status         *string        `json:"status"`
	Comments       []IssueComment `json:"comments"`
	Assignee       *string        `json:"assignee"`
	Priority       *string        `json:"priority"`
	Reporter       *string        `json:"reporter"`
	Labels         []string       `json:"labels"`
	Sprint         *string        `json:"sprint"`
}

type IssueComment struct {
	Timestamp *string `json:"timestamp"`
	Author    *string `json:"author"`
	Body      *string `json:"body"`
}
