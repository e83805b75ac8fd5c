package jira

import (
	"encoding/json"

	"github.com/Tomas-vilte/jira-issue-mcp/internal/domain/models"
)

const (
	EpicLinkField = "customfield_10014"
	SprintField   = "customfield_10021"

	secondsPerHour = 3600.0
)

type (
	namedValue struct {
		Name *string `json:"name"`
	}

	userValue struct {
		DisplayName *string `json:"displayName"`
	}

	worklogField struct {
		Worklogs []json.RawMessage `json:"worklogs"`
	}

	worklogEntry struct {
		TimeSpentSeconds *float64 `json:"timeSpentSeconds"`
	}

	commentField struct {
		Comments []json.RawMessage `json:"comments"`
	}
)

// Summarize extracts the IssueSummary from a raw issue document. Every field
// is read independently: a missing or unexpectedly shaped value only turns
// that field into null (or an empty list) and never fails the whole summary.
func Summarize(issueKey string, raw json.RawMessage) models.IssueSummary {
	summary := models.IssueSummary{
		Key:      issueKey,
		Comments: []models.IssueComment{},
		Labels:   []string{},
	}

	var doc struct {
		Fields map[string]json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return summary
	}
	fields := doc.Fields

	summary.EpicKey = stringValue(fields[EpicLinkField])
	summary.HoursLogged = hoursLogged(fields["worklog"])
	summary.EstimatedHours = estimatedHours(fields["timeoriginalestimate"])
	summary.Title = stringValue(fields["summary"])
	summary.Description = stringValue(fields["description"])
	summary.Status = nameOf(fields["status"])
	summary.Comments = comments(fields["comment"])
	summary.Assignee = displayNameOf(fields["assignee"])
	summary.Priority = nameOf(fields["priority"])
	summary.Reporter = displayNameOf(fields["reporter"])
	summary.Labels = labels(fields["labels"])
	summary.Sprint = sprint(fields[SprintField])

	return summary
}

func hoursLogged(raw json.RawMessage) float64 {
	field, ok := decode[worklogField](raw)
	if !ok {
		return 0
	}

	var totalSeconds float64
	for _, item := range field.Worklogs {
		entry, ok := decode[worklogEntry](item)
		if ok && entry.TimeSpentSeconds != nil {
			totalSeconds += *entry.TimeSpentSeconds
		}
	}
	return totalSeconds / secondsPerHour
}

func estimatedHours(raw json.RawMessage) *float64 {
	seconds, ok := decode[*float64](raw)
	if !ok || seconds == nil {
		return nil
	}
	hours := *seconds / secondsPerHour
	return &hours
}

func comments(raw json.RawMessage) []models.IssueComment {
	result := []models.IssueComment{}

	field, ok := decode[commentField](raw)
	if !ok {
		return result
	}

	for _, item := range field.Comments {
		entry, ok := decode[map[string]json.RawMessage](item)
		if !ok || entry == nil {
			continue
		}
		result = append(result, models.IssueComment{
			Timestamp: stringValue(entry["created"]),
			Author:    displayNameOf(entry["author"]),
			Body:      stringValue(entry["body"]),
		})
	}
	return result
}

// labels conserva solo los elementos de texto.
func labels(raw json.RawMessage) []string {
	result := []string{}

	items, ok := decode[[]json.RawMessage](raw)
	if !ok {
		return result
	}

	for _, item := range items {
		if label := stringValue(item); label != nil {
			result = append(result, *label)
		}
	}
	return result
}

// sprint devuelve el nombre del primer sprint; Jira lista también los sprints anteriores.
func sprint(raw json.RawMessage) *string {
	sprints, ok := decode[[]json.RawMessage](raw)
	if !ok || len(sprints) == 0 {
		return nil
	}
	return nameOf(sprints[0])
}

func stringValue(raw json.RawMessage) *string {
	value, _ := decode[*string](raw)
	return value
}

func nameOf(raw json.RawMessage) *string {
	value, ok := decode[*namedValue](raw)
	if !ok || value == nil {
		return nil
	}
	return value.Name
}

func displayNameOf(raw json.RawMessage) *string {
	value, ok := decode[*userValue](raw)
	if !ok || value == nil {
		return nil
	}
	return value.DisplayName
}

func decode[T any](raw json.RawMessage) (T, bool) {
	var out T
	if len(raw) == 0 {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
