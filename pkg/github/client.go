// Package github creates issues and comments on GitHub repositories through
// the REST API, authenticating with a token resolved from the token chain.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	gogithub "github.com/google/go-github/v68/github"

	gofererrors "github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/logger"
	"github.com/gofer-sh/gofer/pkg/results"
)

// Client wraps go-github for issue mutations.
type Client struct {
	gh     *gogithub.Client
	source string
}

// NewClient creates a GitHub client authenticated with the given token.
func NewClient(token Token) *Client {
	return &Client{
		gh:     gogithub.NewClient(nil).WithAuthToken(token.Value),
		source: token.Source,
	}
}

// NewClientWithGitHub wraps an existing go-github client.
// This function is primarily intended for testing purposes.
func NewClientWithGitHub(gh *gogithub.Client, source string) *Client {
	return &Client{gh: gh, source: source}
}

// IssueRequest describes a new issue. Milestone is a milestone number or a
// milestone title; titles are matched against open milestones.
type IssueRequest struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
	Milestone string
}

// IssueResult reports a created issue.
type IssueResult struct {
	results.Envelope
	URL    string `json:"url"`
	Number int    `json:"number"`
	Repo   string `json:"repo"`
}

// CommentResult reports a created issue comment.
type CommentResult struct {
	results.Envelope
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// AuthStatusResult reports the authenticated login and the chain source that
// supplied the token.
type AuthStatusResult struct {
	results.Envelope
	Login  string `json:"login"`
	Source string `json:"source"`
}

// CreateIssue opens an issue on the given "owner/name" repository.
func (c *Client) CreateIssue(ctx context.Context, repo string, req IssueRequest) (*IssueResult, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	issueReq := &gogithub.IssueRequest{
		Title: &req.Title,
		Body:  &req.Body,
	}
	if len(req.Labels) > 0 {
		issueReq.Labels = &req.Labels
	}
	if len(req.Assignees) > 0 {
		issueReq.Assignees = &req.Assignees
	}
	if req.Milestone != "" {
		if number, ok := c.resolveMilestone(ctx, owner, name, req.Milestone); ok {
			issueReq.Milestone = &number
		}
	}

	issue, _, err := c.gh.Issues.Create(ctx, owner, name, issueReq)
	if err != nil {
		return nil, wrapAPIError(err, repo)
	}
	return &IssueResult{
		Envelope: results.OK(),
		URL:      issue.GetHTMLURL(),
		Number:   issue.GetNumber(),
		Repo:     repo,
	}, nil
}

// CreateComment adds a comment to an existing issue.
func (c *Client) CreateComment(ctx context.Context, repo string, number int, body string) (*CommentResult, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	comment, _, err := c.gh.Issues.CreateComment(ctx, owner, name, number,
		&gogithub.IssueComment{Body: &body})
	if err != nil {
		return nil, wrapAPIError(err, repo)
	}
	return &CommentResult{
		Envelope: results.OK(),
		ID:       comment.GetID(),
		URL:      comment.GetHTMLURL(),
	}, nil
}

// AuthStatus verifies the token by fetching the authenticated user.
func (c *Client) AuthStatus(ctx context.Context) (*AuthStatusResult, error) {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, wrapAPIError(err, "")
	}
	return &AuthStatusResult{
		Envelope: results.OK(),
		Login:    user.GetLogin(),
		Source:   c.source,
	}, nil
}

// resolveMilestone turns a milestone reference into a milestone number. A
// numeric reference passes through unchecked; anything else is matched
// case-insensitively against open milestone titles. Unresolvable references
// are logged and skipped so the issue is still created.
func (c *Client) resolveMilestone(ctx context.Context, owner, name, ref string) (int, bool) {
	if number, err := strconv.Atoi(ref); err == nil {
		return number, true
	}

	opts := &gogithub.MilestoneListOptions{
		State:       "open",
		ListOptions: gogithub.ListOptions{PerPage: 100},
	}
	milestones, _, err := c.gh.Issues.ListMilestones(ctx, owner, name, opts)
	if err != nil {
		logger.Warnf("Could not list milestones for %s/%s: %v; skipping milestone %q", owner, name, err, ref)
		return 0, false
	}
	for _, milestone := range milestones {
		if strings.EqualFold(milestone.GetTitle(), ref) {
			return milestone.GetNumber(), true
		}
	}
	logger.Warnf("Milestone %q not found in %s/%s; creating the issue without it", ref, owner, name)
	return 0, false
}

// splitRepo parses an "owner/name" repository reference.
func splitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", gofererrors.NewValidationError(
			fmt.Sprintf("Invalid repository %q (expected owner/name)", repo), nil)
	}
	return owner, name, nil
}

// wrapAPIError maps a go-github error onto the error taxonomy. A 404 against
// a known repository becomes a not-found error naming it.
func wrapAPIError(err error, repo string) error {
	var ghErr *gogithub.ErrorResponse
	if errors.As(err, &ghErr) {
		if repo != "" && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return gofererrors.NewNotFoundError("Repository not found: "+repo, err)
		}
		message := ghErr.Message
		if message == "" {
			message = ghErr.Error()
		}
		return gofererrors.NewVendorAPIError(message, err)
	}
	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return gofererrors.NewVendorAPIError(rateErr.Message, err)
	}
	return gofererrors.NewUnexpectedError(err.Error(), err)
}
