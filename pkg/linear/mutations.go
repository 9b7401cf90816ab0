// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package linear

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/logger"
	"github.com/gofer-sh/gofer/pkg/results"
)

// validRelationTypes are the relation kinds Linear accepts.
var validRelationTypes = []string{"related", "blocks", "duplicate", "similar"}

// CreateIssueInput describes a new issue. People are referenced by email and
// labels and the parent issue by name; references that resolve to nothing
// are logged and skipped so the issue is still created.
type CreateIssueInput struct {
	Title            string
	Description      string
	TeamName         string
	AssigneeEmail    string
	SubscriberEmails []string
	LabelNames       []string
	ParentIdentifier string
	Priority         int
	DueDate          string
}

// UpdateIssueInput carries the fields to change on an existing issue. Nil
// fields are left untouched.
type UpdateIssueInput struct {
	Title            *string
	Description      *string
	AssigneeEmail    *string
	SubscriberEmails []string
	LabelNames       []string
	ParentIdentifier *string
	Priority         *int
	StateName        *string
	DueDate          *string
}

type issuePayload struct {
	Success bool       `json:"success"`
	Issue   *issueNode `json:"issue"`
}

type commentPayload struct {
	Success bool `json:"success"`
	Comment *struct {
		ID   string `json:"id"`
		Body string `json:"body"`
		User struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
		Issue struct {
			Identifier string `json:"identifier"`
			Title      string `json:"title"`
		} `json:"issue"`
	} `json:"comment"`
}

type relationPayload struct {
	Success       bool `json:"success"`
	IssueRelation *struct {
		ID    string `json:"id"`
		Type  string `json:"type"`
		Issue struct {
			Identifier string `json:"identifier"`
		} `json:"issue"`
		RelatedIssue struct {
			Identifier string `json:"identifier"`
		} `json:"relatedIssue"`
	} `json:"issueRelation"`
}

// CreateIssue creates an issue on the team named in the input, or the
// workspace's first team when no name is given.
func (c *Client) CreateIssue(ctx context.Context, in CreateIssueInput) (*IssueResult, error) {
	teamID, err := c.TeamID(ctx, in.TeamName)
	if err != nil {
		return nil, err
	}

	input := map[string]any{
		"teamId":      teamID,
		"title":       in.Title,
		"description": in.Description,
		"priority":    in.Priority,
	}
	if in.DueDate != "" {
		input["dueDate"] = in.DueDate
	}
	if in.AssigneeEmail != "" {
		id, ok, err := c.UserID(ctx, in.AssigneeEmail)
		if err != nil {
			return nil, err
		}
		if ok {
			input["assigneeId"] = id
		} else {
			logger.Warnf("User '%s' not found", in.AssigneeEmail)
		}
	}
	if len(in.SubscriberEmails) > 0 {
		ids, err := c.subscriberIDs(ctx, in.SubscriberEmails)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			input["subscriberIds"] = ids
		}
	}
	if len(in.LabelNames) > 0 {
		ids, err := c.LabelIDs(ctx, in.LabelNames)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			input["labelIds"] = ids
		}
	}
	if in.ParentIdentifier != "" {
		id, ok, err := c.parentID(ctx, in.ParentIdentifier)
		if err != nil {
			return nil, err
		}
		if ok {
			input["parentId"] = id
		}
	}

	var payload struct {
		IssueCreate issuePayload `json:"issueCreate"`
	}
	if err := c.query(ctx, issueCreateMutation, map[string]any{"input": input}, &payload); err != nil {
		return nil, err
	}
	return issueResult(payload.IssueCreate, "IssueCreate")
}

// UpdateIssue changes the supplied fields on the issue with the given
// identifier.
func (c *Client) UpdateIssue(ctx context.Context, identifier string, in UpdateIssueInput) (*IssueResult, error) {
	issueID, err := c.IssueID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	input := map[string]any{}
	if in.Title != nil {
		input["title"] = *in.Title
	}
	if in.Description != nil {
		input["description"] = *in.Description
	}
	if in.Priority != nil {
		input["priority"] = *in.Priority
	}
	if in.DueDate != nil {
		input["dueDate"] = *in.DueDate
	}
	if in.StateName != nil {
		id, ok, err := c.StateID(ctx, *in.StateName, "")
		if err != nil {
			return nil, err
		}
		if ok {
			input["stateId"] = id
		} else {
			logger.Warnf("State '%s' not found", *in.StateName)
		}
	}
	if in.AssigneeEmail != nil {
		id, ok, err := c.UserID(ctx, *in.AssigneeEmail)
		if err != nil {
			return nil, err
		}
		if ok {
			input["assigneeId"] = id
		} else {
			logger.Warnf("User '%s' not found", *in.AssigneeEmail)
		}
	}
	if in.SubscriberEmails != nil {
		ids, err := c.subscriberIDs(ctx, in.SubscriberEmails)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			input["subscriberIds"] = ids
		}
	}
	if in.LabelNames != nil {
		ids, err := c.LabelIDs(ctx, in.LabelNames)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			input["labelIds"] = ids
		}
	}
	if in.ParentIdentifier != nil {
		id, ok, err := c.parentID(ctx, *in.ParentIdentifier)
		if err != nil {
			return nil, err
		}
		if ok {
			input["parentId"] = id
		}
	}

	var payload struct {
		IssueUpdate issuePayload `json:"issueUpdate"`
	}
	if err := c.query(ctx, issueUpdateMutation, map[string]any{"id": issueID, "input": input}, &payload); err != nil {
		return nil, err
	}
	return issueResult(payload.IssueUpdate, "IssueUpdate")
}

// CreateComment adds a markdown comment to the issue with the given
// identifier.
func (c *Client) CreateComment(ctx context.Context, identifier, body string) (*CommentResult, error) {
	issueID, err := c.IssueID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var payload struct {
		CommentCreate commentPayload `json:"commentCreate"`
	}
	variables := map[string]any{"input": map[string]any{"issueId": issueID, "body": body}}
	if err := c.query(ctx, commentCreateMutation, variables, &payload); err != nil {
		return nil, err
	}
	return commentResult(payload.CommentCreate, "CommentCreate")
}

// UpdateComment replaces the body of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, commentID, body string) (*CommentResult, error) {
	var payload struct {
		CommentUpdate commentPayload `json:"commentUpdate"`
	}
	variables := map[string]any{"id": commentID, "input": map[string]any{"body": body}}
	if err := c.query(ctx, commentUpdateMutation, variables, &payload); err != nil {
		return nil, err
	}
	return commentResult(payload.CommentUpdate, "CommentUpdate")
}

// CreateRelation links two issues. relationType is one of related, blocks,
// duplicate, similar.
func (c *Client) CreateRelation(ctx context.Context, identifier, relatedIdentifier, relationType string) (*RelationResult, error) {
	if !slices.Contains(validRelationTypes, relationType) {
		return nil, errors.NewValidationError(fmt.Sprintf("Invalid relation type: %s (valid types: %s)",
			relationType, strings.Join(validRelationTypes, ", ")), nil)
	}

	issueID, err := c.IssueID(ctx, identifier)
	if err != nil {
		return nil, err
	}
	relatedID, err := c.IssueID(ctx, relatedIdentifier)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("Related issue not found: "+relatedIdentifier, err)
		}
		return nil, err
	}

	var payload struct {
		IssueRelationCreate relationPayload `json:"issueRelationCreate"`
	}
	variables := map[string]any{"input": map[string]any{
		"issueId":        issueID,
		"relatedIssueId": relatedID,
		"type":           relationType,
	}}
	if err := c.query(ctx, issueRelationCreateMutation, variables, &payload); err != nil {
		return nil, err
	}

	if !payload.IssueRelationCreate.Success || payload.IssueRelationCreate.IssueRelation == nil {
		return nil, errors.NewVendorAPIError("IssueRelationCreate mutation did not succeed", nil)
	}
	relation := payload.IssueRelationCreate.IssueRelation
	return &RelationResult{
		Envelope:     results.OK(),
		ID:           relation.ID,
		Type:         relation.Type,
		Issue:        relation.Issue.Identifier,
		RelatedIssue: relation.RelatedIssue.Identifier,
	}, nil
}

// subscriberIDs resolves subscriber emails, logging and skipping the ones
// that match no user.
func (c *Client) subscriberIDs(ctx context.Context, emails []string) ([]string, error) {
	var ids []string
	for _, email := range emails {
		id, ok, err := c.UserID(ctx, email)
		if err != nil {
			return nil, err
		}
		if ok {
			ids = append(ids, id)
		} else {
			logger.Warnf("Subscriber '%s' not found", email)
		}
	}
	return ids, nil
}

// parentID resolves a parent issue identifier, logging and skipping it when
// the issue does not exist. Other lookup failures propagate.
func (c *Client) parentID(ctx context.Context, identifier string) (string, bool, error) {
	id, err := c.IssueID(ctx, identifier)
	if err != nil {
		if errors.IsNotFound(err) {
			logger.Warnf("Parent issue '%s' not found", identifier)
			return "", false, nil
		}
		return "", false, err
	}
	return id, true, nil
}

func issueResult(payload issuePayload, mutation string) (*IssueResult, error) {
	if !payload.Success || payload.Issue == nil {
		return nil, errors.NewVendorAPIError(mutation+" mutation did not succeed", nil)
	}
	return &IssueResult{
		Envelope:   results.OK(),
		ID:         payload.Issue.ID,
		Identifier: payload.Issue.Identifier,
		Title:      payload.Issue.Title,
		URL:        payload.Issue.URL,
	}, nil
}

func commentResult(payload commentPayload, mutation string) (*CommentResult, error) {
	if !payload.Success || payload.Comment == nil {
		return nil, errors.NewVendorAPIError(mutation+" mutation did not succeed", nil)
	}
	return &CommentResult{
		Envelope: results.OK(),
		ID:       payload.Comment.ID,
		Issue:    payload.Comment.Issue.Identifier,
		User:     payload.Comment.User.Name,
	}, nil
}
