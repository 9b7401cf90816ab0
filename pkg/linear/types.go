package linear

import "github.com/gofer-sh/gofer/pkg/results"

// Wire nodes decoded from GraphQL responses.

type teamNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

type userNode struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type labelNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type stateNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Team struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
}

type issueNode struct {
	ID         string  `json:"id"`
	Identifier string  `json:"identifier"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	UpdatedAt  string  `json:"updatedAt"`
	DueDate    string  `json:"dueDate"`
	Priority   float64 `json:"priority"`
	State      struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"state"`
}

// IssueResult reports a created or updated issue.
type IssueResult struct {
	results.Envelope
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	URL        string `json:"url"`
}

// CommentResult reports a created or updated comment.
type CommentResult struct {
	results.Envelope
	ID    string `json:"id"`
	Issue string `json:"issue"`
	User  string `json:"user"`
}

// RelationResult reports a created relation between two issues.
type RelationResult struct {
	results.Envelope
	ID           string `json:"id"`
	Type         string `json:"type"`
	Issue        string `json:"issue"`
	RelatedIssue string `json:"related_issue"`
}

// AssignedIssue is one row in an assigned-issues listing.
type AssignedIssue struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	State      string `json:"state"`
	Priority   int    `json:"priority"`
	DueDate    string `json:"due_date,omitempty"`
	UpdatedAt  string `json:"updated_at"`
	URL        string `json:"url"`
}

// AssignedResult reports the issues assigned to one user.
type AssignedResult struct {
	results.Envelope
	Count  int             `json:"count"`
	Issues []AssignedIssue `json:"issues"`
}
