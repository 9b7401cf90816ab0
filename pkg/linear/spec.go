package linear

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

// API is the set of tracker operations a spec document can invoke.
type API interface {
	CreateIssue(ctx context.Context, in CreateIssueInput) (*IssueResult, error)
	UpdateIssue(ctx context.Context, identifier string, in UpdateIssueInput) (*IssueResult, error)
	CreateComment(ctx context.Context, identifier, body string) (*CommentResult, error)
	UpdateComment(ctx context.Context, commentID, body string) (*CommentResult, error)
	CreateRelation(ctx context.Context, identifier, relatedIdentifier, relationType string) (*RelationResult, error)
	AssignedIssues(ctx context.Context, email string, limit int, includeCompleted bool) (*AssignedResult, error)
}

// RelationSpec asks for a relation from a freshly created issue to an
// existing one.
type RelationSpec struct {
	Issue string `json:"issue"`
	Type  string `json:"type,omitempty"`
}

// Spec is one tracker operation request, usually decoded from a JSON
// document. Pointer fields distinguish absent from empty so updates only
// touch what the document names.
type Spec struct {
	Operation         string         `json:"operation"`
	Identifier        string         `json:"identifier,omitempty"`
	Title             *string        `json:"title,omitempty"`
	Description       *string        `json:"description,omitempty"`
	TeamName          string         `json:"team_name,omitempty"`
	AssigneeEmail     *string        `json:"assignee_email,omitempty"`
	SubscriberEmails  []string       `json:"subscriber_emails,omitempty"`
	LabelNames        []string       `json:"label_names,omitempty"`
	ParentIdentifier  *string        `json:"parent_identifier,omitempty"`
	Priority          *int           `json:"priority,omitempty"`
	StateName         *string        `json:"state_name,omitempty"`
	DueDate           *string        `json:"due_date,omitempty"`
	Relations         []RelationSpec `json:"relations,omitempty"`
	Body              string         `json:"body,omitempty"`
	CommentID         string         `json:"comment_id,omitempty"`
	RelatedIdentifier string         `json:"related_identifier,omitempty"`
	RelationType      string         `json:"type,omitempty"`
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

	var missing []string
	switch s.Operation {
	case "create_issue":
		if strValue(s.Title) == "" {
			missing = append(missing, "title")
		}
		if strValue(s.Description) == "" {
			missing = append(missing, "description")
		}
	case "update_issue":
		if s.Identifier == "" {
			missing = append(missing, "identifier")
		}
	case "create_comment":
		if s.Identifier == "" {
			missing = append(missing, "identifier")
		}
		if s.Body == "" {
			missing = append(missing, "body")
		}
	case "update_comment":
		if s.CommentID == "" {
			missing = append(missing, "comment_id")
		}
		if s.Body == "" {
			missing = append(missing, "body")
		}
	case "create_relation":
		if s.Identifier == "" {
			missing = append(missing, "identifier")
		}
		if s.RelatedIdentifier == "" {
			missing = append(missing, "related_identifier")
		}
	default:
		return errors.NewValidationError("Unknown operation: "+s.Operation, nil)
	}

	if len(missing) > 0 {
		return errors.NewValidationError("Missing required fields: "+strings.Join(missing, ", "), nil)
	}
	return nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Open resolves the API key through the chain and returns a ready client.
// configOrder comes from the config file and may be empty; caBundle
// optionally points at a PEM file with additional trust roots.
func Open(ctx context.Context, configOrder []string, caBundle string) (API, error) {
	envReader := &env.OSReader{}
	op := secrets.NewOPReader(envReader)
	key, err := ResolveKey(ctx, envReader, keyring.NewCompositeProvider(), op, configOrder)
	if err != nil {
		return nil, err
	}
	return NewClient(key, caBundle)
}

// Runner executes spec documents. The client is built lazily so key
// failures surface as error envelopes instead of aborting the process.
type Runner struct {
	opener func(ctx context.Context) (API, error)
}

// NewRunner creates a runner that authenticates through the key chain on
// first use.
func NewRunner(configOrder []string, caBundle string) *Runner {
	return &Runner{
		opener: func(ctx context.Context) (API, error) {
			return Open(ctx, configOrder, caBundle)
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
		return createIssueWithRelations(ctx, api, spec)
	case "update_issue":
		return api.UpdateIssue(ctx, spec.Identifier, UpdateIssueInput{
			Title:            spec.Title,
			Description:      spec.Description,
			AssigneeEmail:    spec.AssigneeEmail,
			SubscriberEmails: spec.SubscriberEmails,
			LabelNames:       spec.LabelNames,
			ParentIdentifier: spec.ParentIdentifier,
			Priority:         spec.Priority,
			StateName:        spec.StateName,
			DueDate:          spec.DueDate,
		})
	case "create_comment":
		return api.CreateComment(ctx, spec.Identifier, spec.Body)
	case "update_comment":
		return api.UpdateComment(ctx, spec.CommentID, spec.Body)
	case "create_relation":
		relationType := spec.RelationType
		if relationType == "" {
			relationType = "related"
		}
		return api.CreateRelation(ctx, spec.Identifier, spec.RelatedIdentifier, relationType)
	default:
		return nil, errors.NewValidationError("Unknown operation: "+spec.Operation, nil)
	}
}

// createIssueWithRelations creates the issue and then any relations the
// document asks for, from the new issue to the named ones.
func createIssueWithRelations(ctx context.Context, api API, spec *Spec) (any, error) {
	priority := 3
	if spec.Priority != nil {
		priority = *spec.Priority
	}

	issue, err := api.CreateIssue(ctx, CreateIssueInput{
		Title:            strValue(spec.Title),
		Description:      strValue(spec.Description),
		TeamName:         spec.TeamName,
		AssigneeEmail:    strValue(spec.AssigneeEmail),
		SubscriberEmails: spec.SubscriberEmails,
		LabelNames:       spec.LabelNames,
		ParentIdentifier: strValue(spec.ParentIdentifier),
		Priority:         priority,
		DueDate:          strValue(spec.DueDate),
	})
	if err != nil {
		return nil, err
	}

	for _, relation := range spec.Relations {
		if relation.Issue == "" {
			continue
		}
		relationType := relation.Type
		if relationType == "" {
			relationType = "related"
		}
		if _, err := api.CreateRelation(ctx, issue.Identifier, relation.Issue, relationType); err != nil {
			return nil, err
		}
	}
	return issue, nil
}
