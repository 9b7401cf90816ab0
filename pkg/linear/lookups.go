// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package linear

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/logger"
	"github.com/gofer-sh/gofer/pkg/results"
)

// TeamID resolves a team name to an ID, case-insensitively. An empty name
// picks the workspace's first team.
func (c *Client) TeamID(ctx context.Context, name string) (string, error) {
	var payload struct {
		Teams struct {
			Nodes []teamNode `json:"nodes"`
		} `json:"teams"`
	}
	if err := c.query(ctx, teamsQuery, nil, &payload); err != nil {
		return "", err
	}

	teams := payload.Teams.Nodes
	if len(teams) == 0 {
		return "", errors.NewVendorAPIError("No teams found", nil)
	}
	if name == "" {
		return teams[0].ID, nil
	}
	for _, team := range teams {
		if strings.EqualFold(team.Name, name) {
			return team.ID, nil
		}
	}
	return "", errors.NewValidationError(fmt.Sprintf("Team '%s' not found", name), nil)
}

// UserID resolves an email address to a user ID, case-insensitively. A user
// that does not exist is reported through the boolean, not an error.
func (c *Client) UserID(ctx context.Context, email string) (string, bool, error) {
	var payload struct {
		Users struct {
			Nodes []userNode `json:"nodes"`
		} `json:"users"`
	}
	if err := c.query(ctx, usersQuery, nil, &payload); err != nil {
		return "", false, err
	}

	for _, user := range payload.Users.Nodes {
		if strings.EqualFold(user.Email, email) {
			return user.ID, true, nil
		}
	}
	return "", false, nil
}

// IssueID resolves an issue identifier such as "LUM-12" to the internal ID.
func (c *Client) IssueID(ctx context.Context, identifier string) (string, error) {
	var payload struct {
		Issue *issueNode `json:"issue"`
	}
	if err := c.query(ctx, issueByIdentifierQuery, map[string]any{"identifier": identifier}, &payload); err != nil {
		return "", err
	}

	if payload.Issue == nil {
		return "", errors.NewNotFoundError("Issue not found: "+identifier, nil)
	}
	return payload.Issue.ID, nil
}

// LabelIDs resolves label names to IDs, case-insensitively. Names that do
// not match any label are logged and skipped.
func (c *Client) LabelIDs(ctx context.Context, names []string) ([]string, error) {
	var payload struct {
		IssueLabels struct {
			Nodes []labelNode `json:"nodes"`
		} `json:"issueLabels"`
	}
	if err := c.query(ctx, labelsQuery, nil, &payload); err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(payload.IssueLabels.Nodes))
	for _, label := range payload.IssueLabels.Nodes {
		byName[strings.ToLower(label.Name)] = label.ID
	}

	var ids []string
	for _, name := range names {
		if id, ok := byName[strings.ToLower(name)]; ok {
			ids = append(ids, id)
		} else {
			logger.Warnf("Label '%s' not found", name)
		}
	}
	return ids, nil
}

// StateID resolves a workflow state name to an ID, case-insensitively,
// optionally constrained to one team's states.
func (c *Client) StateID(ctx context.Context, name, teamName string) (string, bool, error) {
	var payload struct {
		WorkflowStates struct {
			Nodes []stateNode `json:"nodes"`
		} `json:"workflowStates"`
	}
	if err := c.query(ctx, workflowStatesQuery, nil, &payload); err != nil {
		return "", false, err
	}

	for _, state := range payload.WorkflowStates.Nodes {
		if !strings.EqualFold(state.Name, name) {
			continue
		}
		if teamName != "" && !strings.EqualFold(state.Team.Name, teamName) {
			continue
		}
		return state.ID, true, nil
	}
	return "", false, nil
}

// AssignedIssues lists issues assigned to the user with the given email,
// most recently updated first. Completed issues are excluded unless asked
// for.
func (c *Client) AssignedIssues(ctx context.Context, email string, limit int, includeCompleted bool) (*AssignedResult, error) {
	userID, ok, err := c.UserID(ctx, email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("User '%s' not found", email), nil)
	}

	filter := map[string]any{
		"assignee": map[string]any{"id": map[string]any{"eq": userID}},
	}
	if !includeCompleted {
		filter["state"] = map[string]any{"type": map[string]any{"neq": "completed"}}
	}

	var payload struct {
		Issues struct {
			Nodes []issueNode `json:"nodes"`
		} `json:"issues"`
	}
	if err := c.query(ctx, assignedIssuesQuery, map[string]any{"filter": filter, "first": limit}, &payload); err != nil {
		return nil, err
	}

	issues := make([]AssignedIssue, 0, len(payload.Issues.Nodes))
	for _, node := range payload.Issues.Nodes {
		issues = append(issues, AssignedIssue{
			Identifier: node.Identifier,
			Title:      node.Title,
			State:      node.State.Name,
			Priority:   int(node.Priority),
			DueDate:    node.DueDate,
			UpdatedAt:  node.UpdatedAt,
			URL:        node.URL,
		})
	}
	return &AssignedResult{Envelope: results.OK(), Count: len(issues), Issues: issues}, nil
}
