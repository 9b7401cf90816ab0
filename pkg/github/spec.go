package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofer-sh/gofer/pkg/env"
	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/results"
	"github.com/gofer-sh/gofer/pkg/secrets"
	"github.com/gofer-sh/gofer/pkg/secrets/keyring"
)

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks -source=spec.go API

// API is the set of GitHub operations a spec document can invoke.
type API interface {
	CreateIssue(ctx context.Context, repo string, req IssueRequest) (*IssueResult, error)
	CreateComment(ctx context.Context, repo string, number int, body string) (*CommentResult, error)
	AuthStatus(ctx context.Context) (*AuthStatusResult, error)
}

// Spec is one GitHub operation request, usually decoded from a JSON
// document.
type Spec struct {
	Operation string   `json:"operation"`
	Repo      string   `json:"repo,omitempty"`
	Title     string   `json:"title,omitempty"`
	Body      string   `json:"body,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Milestone string   `json:"milestone,omitempty"`
	Number    int      `json:"number,omitempty"`
}

// ParseSpec decodes a JSON operation document.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("Invalid JSON input: %v", err), err)
	}
	return &spec, nil
}

// Validate checks the document before any network call. Fields that are
// empty are treated the same as fields that are absent.
func (s *Spec) Validate() error {
	if s.Operation == "" {
		return errors.NewValidationError("Missing required fields: operation", nil)
	}

	switch s.Operation {
	case "create_issue":
		var missing []string
		if s.Repo == "" {
			missing = append(missing, "repo")
		}
		if s.Title == "" {
			missing = append(missing, "title")
		}
		if s.Body == "" {
			missing = append(missing, "body")
		}
		if len(missing) > 0 {
			return errors.NewValidationError("Missing required fields: "+strings.Join(missing, ", "), nil)
		}
	case "create_comment":
		var missing []string
		if s.Repo == "" {
			missing = append(missing, "repo")
		}
		if s.Number == 0 {
			missing = append(missing, "number")
		}
		if s.Body == "" {
			missing = append(missing, "body")
		}
		if len(missing) > 0 {
			return errors.NewValidationError("Missing required fields: "+strings.Join(missing, ", "), nil)
		}
	case "auth_status":
	default:
		return errors.NewValidationError("Unknown operation: "+s.Operation, nil)
	}
	return nil
}

// Runner executes spec documents. The client is built lazily so token
// failures surface as error envelopes instead of aborting the process.
type Runner struct {
	opener func(ctx context.Context) (API, error)
}

// NewRunner creates a runner that authenticates through the token chain on
// first use. configOrder comes from the config file and may be empty.
func NewRunner(configOrder []string) *Runner {
	return &Runner{
		opener: func(ctx context.Context) (API, error) {
			envReader := &env.OSReader{}
			op := secrets.NewOPReader(envReader)
			token, err := ResolveToken(ctx, envReader, keyring.NewCompositeProvider(), op, configOrder)
			if err != nil {
				return nil, err
			}
			return NewClient(token), nil
		},
	}
}

// NewRunnerWithAPI creates a runner over an existing client.
// This function is primarily intended for testing purposes.
func NewRunnerWithAPI(api API) *Runner {
	return &Runner{
		opener: func(context.Context) (API, error) {
			return api, nil
		},
	}
}

// Execute validates the document, builds the client, and runs the requested
// operation. Every failure comes back as an error envelope.
func (r *Runner) Execute(ctx context.Context, spec *Spec) any {
	if err := spec.Validate(); err != nil {
		return results.FromError(err)
	}

	api, err := r.opener(ctx)
	if err != nil {
		return results.FromError(err)
	}

	result, err := dispatch(ctx, api, spec)
	if err != nil {
		return results.FromError(err)
	}
	return result
}

func dispatch(ctx context.Context, api API, spec *Spec) (any, error) {
	switch spec.Operation {
	case "create_issue":
		return api.CreateIssue(ctx, spec.Repo, IssueRequest{
			Title:     spec.Title,
			Body:      spec.Body,
			Labels:    spec.Labels,
			Assignees: spec.Assignees,
			Milestone: spec.Milestone,
		})
	case "create_comment":
		return api.CreateComment(ctx, spec.Repo, spec.Number, spec.Body)
	case "auth_status":
		return api.AuthStatus(ctx)
	default:
		return nil, errors.NewValidationError("Unknown operation: "+spec.Operation, nil)
	}
}
