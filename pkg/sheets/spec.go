package sheets

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

// API is the set of spreadsheet operations a spec document can invoke.
type API interface {
	Read(ctx context.Context, spreadsheetID, sheet, rangeNotation string) (*ReadResult, error)
	ReadDicts(ctx context.Context, spreadsheetID, sheet, rangeNotation string) (*ReadDictsResult, error)
	Append(ctx context.Context, spreadsheetID, sheet string, row []any) (*AppendResult, error)
	AppendRows(ctx context.Context, spreadsheetID, sheet string, rows [][]any) (*AppendResult, error)
	Update(ctx context.Context, spreadsheetID, sheet, rangeNotation string, values [][]any) (*UpdateResult, error)
	Find(ctx context.Context, spreadsheetID, sheet, column, value, rangeNotation string) (*FindResult, error)
	AppendTyped(ctx context.Context, spreadsheetID, sheet string, rows [][]any) (*AppendTypedResult, error)
}

// Spec is one spreadsheet operation request, usually decoded from a JSON
// document. Values carries a single row for append and a row grid for
// update, matching the shape each operation expects.
type Spec struct {
	SpreadsheetID string  `json:"spreadsheet_id"`
	SheetName     string  `json:"sheet_name"`
	Operation     string  `json:"operation"`
	Values        any     `json:"values,omitempty"`
	Rows          [][]any `json:"rows,omitempty"`
	RangeNotation string  `json:"range_notation,omitempty"`
	Column        string  `json:"column,omitempty"`
	Value         string  `json:"value,omitempty"`
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
	var missing []string
	if s.SpreadsheetID == "" {
		missing = append(missing, "spreadsheet_id")
	}
	if s.SheetName == "" {
		missing = append(missing, "sheet_name")
	}
	if s.Operation == "" {
		missing = append(missing, "operation")
	}
	if len(missing) > 0 {
		return errors.NewValidationError("Missing required fields: "+strings.Join(missing, ", "), nil)
	}

	switch s.Operation {
	case "read", "read_dicts":
	case "append":
		if isMissing(s.Values) {
			return errors.NewValidationError("Missing 'values' field for append operation", nil)
		}
	case "append_rows":
		if len(s.Rows) == 0 {
			return errors.NewValidationError("Missing 'rows' field for append_rows operation", nil)
		}
	case "update":
		if s.RangeNotation == "" {
			return errors.NewValidationError("Missing 'range_notation' field for update operation", nil)
		}
		if isMissing(s.Values) {
			return errors.NewValidationError("Missing 'values' field for update operation", nil)
		}
	case "find":
		if s.Column == "" {
			return errors.NewValidationError("Missing 'column' field for find operation", nil)
		}
		if s.Value == "" {
			return errors.NewValidationError("Missing 'value' field for find operation", nil)
		}
	case "append_table":
		if len(s.Rows) == 0 {
			return errors.NewValidationError("Missing 'rows' field for append_table operation", nil)
		}
	default:
		return errors.NewValidationError("Unknown operation: "+s.Operation, nil)
	}
	return nil
}

func isMissing(value any) bool {
	if value == nil {
		return true
	}
	if list, ok := value.([]any); ok {
		return len(list) == 0
	}
	return false
}

// toRow coerces a decoded values field into a single row.
func toRow(value any) ([]any, bool) {
	row, ok := value.([]any)
	return row, ok
}

// toGrid coerces a decoded values field into a row grid.
func toGrid(value any) ([][]any, bool) {
	outer, ok := value.([]any)
	if !ok {
		return nil, false
	}
	grid := make([][]any, 0, len(outer))
	for _, item := range outer {
		row, ok := item.([]any)
		if !ok {
			return nil, false
		}
		grid = append(grid, row)
	}
	return grid, true
}

// Runner executes spec documents. The client is built lazily so credential
// failures surface as error envelopes instead of aborting the process.
type Runner struct {
	opener func(ctx context.Context) (API, error)
}

// NewRunner creates a runner that authenticates through the credential chain
// on first use. configOrder comes from the config file and may be empty.
func NewRunner(configOrder []string) *Runner {
	return &Runner{
		opener: func(ctx context.Context) (API, error) {
			envReader := &env.OSReader{}
			op := secrets.NewOPReader(envReader)
			chain := NewCredentialChain(envReader, keyring.NewCompositeProvider(), op, configOrder)
			value, err := chain.Resolve(ctx)
			if err != nil {
				return nil, err
			}
			creds, err := Materialize(ctx, op, value)
			if err != nil {
				return nil, err
			}
			return NewClient(ctx, creds)
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
	case "read":
		return api.Read(ctx, spec.SpreadsheetID, spec.SheetName, spec.RangeNotation)
	case "read_dicts":
		return api.ReadDicts(ctx, spec.SpreadsheetID, spec.SheetName, spec.RangeNotation)
	case "append":
		row, ok := toRow(spec.Values)
		if !ok {
			return nil, errors.NewValidationError("Invalid 'values' field for append operation", nil)
		}
		return api.Append(ctx, spec.SpreadsheetID, spec.SheetName, row)
	case "append_rows":
		return api.AppendRows(ctx, spec.SpreadsheetID, spec.SheetName, spec.Rows)
	case "update":
		grid, ok := toGrid(spec.Values)
		if !ok {
			return nil, errors.NewValidationError("Invalid 'values' field for update operation", nil)
		}
		return api.Update(ctx, spec.SpreadsheetID, spec.SheetName, spec.RangeNotation, grid)
	case "find":
		return api.Find(ctx, spec.SpreadsheetID, spec.SheetName, spec.Column, spec.Value, spec.RangeNotation)
	case "append_table":
		return api.AppendTyped(ctx, spec.SpreadsheetID, spec.SheetName, spec.Rows)
	default:
		return nil, errors.NewValidationError("Unknown operation: "+spec.Operation, nil)
	}
}
