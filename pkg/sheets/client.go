// Package sheets reads and writes Google Sheets spreadsheets. Credentials
// come from the credential chain (inline JSON, environment, OS keychain, or
// 1Password) and every operation returns a result envelope instead of leaking
// vendor SDK errors.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	gofererrors "github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/results"
)

// spreadsheetScope grants read and write access to spreadsheets.
const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

// Client wraps the Sheets API for the operations gofer supports.
type Client struct {
	svc *gsheets.Service
}

// NewClient authenticates with a service account JSON document and returns a
// ready client.
func NewClient(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, spreadsheetScope)
	if err != nil {
		return nil, gofererrors.NewAuthenticationUnavailableError(
			fmt.Sprintf("Failed to load service account credentials: %v", err), err)
	}
	svc, err := gsheets.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, gofererrors.NewAuthenticationUnavailableError(
			fmt.Sprintf("Failed to create Sheets service: %v", err), err)
	}
	return &Client{svc: svc}, nil
}

// NewClientWithService creates a client over an existing Sheets service.
// This function is primarily intended for testing purposes.
func NewClientWithService(svc *gsheets.Service) *Client {
	return &Client{svc: svc}
}

// buildRange returns "sheet!notation" when a notation is supplied, else the
// bare sheet name, which addresses the whole sheet.
func buildRange(sheet, notation string) string {
	if notation == "" {
		return sheet
	}
	return sheet + "!" + notation
}

// wrapAPIError converts a Sheets API failure into a typed error. A 404 means
// the spreadsheet or the addressed sheet does not exist.
func wrapAPIError(err error, spreadsheetID string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusNotFound {
			return gofererrors.NewNotFoundError(
				fmt.Sprintf("Spreadsheet or sheet not found: %s", spreadsheetID), err)
		}
		return gofererrors.NewVendorAPIError(apiErr.Error(), err)
	}
	return gofererrors.NewUnexpectedError(err.Error(), err)
}

// ReadResult is the payload of a read operation.
type ReadResult struct {
	results.Envelope
	Data    [][]any `json:"data"`
	Rows    int     `json:"rows"`
	Columns int     `json:"columns"`
}

// Read returns the cell grid of a sheet, or of a range within it. Rows is
// the number of returned rows and Columns the width of the first row.
func (c *Client) Read(ctx context.Context, spreadsheetID, sheet, rangeNotation string) (*ReadResult, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, buildRange(sheet, rangeNotation)).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err, spreadsheetID)
	}

	data := resp.Values
	if data == nil {
		data = [][]any{}
	}
	columns := 0
	if len(data) > 0 {
		columns = len(data[0])
	}
	return &ReadResult{
		Envelope: results.OK(),
		Data:     data,
		Rows:     len(data),
		Columns:  columns,
	}, nil
}

// ReadDictsResult is the payload of a read_dicts operation.
type ReadDictsResult struct {
	results.Envelope
	Data    []map[string]any `json:"data"`
	Rows    int              `json:"rows"`
	Headers []string         `json:"headers"`
}

// ReadDicts reads a sheet treating the first row as headers and returns one
// map per remaining row. Rows shorter than the header row are padded with
// empty strings; cells beyond the headers are dropped.
func (c *Client) ReadDicts(ctx context.Context, spreadsheetID, sheet, rangeNotation string) (*ReadDictsResult, error) {
	read, err := c.Read(ctx, spreadsheetID, sheet, rangeNotation)
	if err != nil {
		return nil, err
	}

	if len(read.Data) == 0 {
		return &ReadDictsResult{
			Envelope: results.OK(),
			Data:     []map[string]any{},
			Headers:  []string{},
		}, nil
	}

	headers := make([]string, len(read.Data[0]))
	for i, cell := range read.Data[0] {
		headers[i] = fmt.Sprint(cell)
	}

	data := make([]map[string]any, 0, len(read.Data)-1)
	for _, row := range read.Data[1:] {
		record := make(map[string]any, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		data = append(data, record)
	}

	return &ReadDictsResult{
		Envelope: results.OK(),
		Data:     data,
		Rows:     len(data),
		Headers:  headers,
	}, nil
}

// AppendResult is the payload of append and append_rows operations.
type AppendResult struct {
	results.Envelope
	UpdatedRange string `json:"updated_range"`
	UpdatedRows  int64  `json:"updated_rows"`
}

// Append appends a single row after the last row with data. The row is sent
// exactly as given, without padding or type coercion.
func (c *Client) Append(ctx context.Context, spreadsheetID, sheet string, row []any) (*AppendResult, error) {
	return c.AppendRows(ctx, spreadsheetID, sheet, [][]any{row})
}

// AppendRows appends multiple rows after the last row with data.
func (c *Client) AppendRows(ctx context.Context, spreadsheetID, sheet string, rows [][]any) (*AppendResult, error) {
	body := &gsheets.ValueRange{Values: rows}
	resp, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, sheet, body).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err, spreadsheetID)
	}

	result := &AppendResult{Envelope: results.OK()}
	if resp.Updates != nil {
		result.UpdatedRange = resp.Updates.UpdatedRange
		result.UpdatedRows = resp.Updates.UpdatedRows
	}
	return result, nil
}

// UpdateResult is the payload of an update operation.
type UpdateResult struct {
	results.Envelope
	UpdatedRange string `json:"updated_range"`
	UpdatedRows  int64  `json:"updated_rows"`
	UpdatedCells int64  `json:"updated_cells"`
}

// Update overwrites the given range with values, uninterpreted.
func (c *Client) Update(ctx context.Context, spreadsheetID, sheet, rangeNotation string, values [][]any) (*UpdateResult, error) {
	body := &gsheets.ValueRange{Values: values}
	resp, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, buildRange(sheet, rangeNotation), body).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err, spreadsheetID)
	}
	return &UpdateResult{
		Envelope:     results.OK(),
		UpdatedRange: resp.UpdatedRange,
		UpdatedRows:  resp.UpdatedRows,
		UpdatedCells: resp.UpdatedCells,
	}, nil
}

// FindResult is the payload of a find operation. Row is 1-based within the
// searched range; nil means no match.
type FindResult struct {
	results.Envelope
	Row *int `json:"row"`
}

// Find locates the first row whose leading cell equals value. The search
// range is the notation when given, else the whole column.
func (c *Client) Find(ctx context.Context, spreadsheetID, sheet, column, value, rangeNotation string) (*FindResult, error) {
	notation := rangeNotation
	if notation == "" {
		notation = column + ":" + column
	}

	read, err := c.Read(ctx, spreadsheetID, sheet, notation)
	if err != nil {
		return nil, err
	}

	for i, row := range read.Data {
		if len(row) > 0 && fmt.Sprint(row[0]) == value {
			rowNum := i + 1
			return &FindResult{Envelope: results.OK(), Row: &rowNum}, nil
		}
	}
	return &FindResult{Envelope: results.OK()}, nil
}

// AppendTypedResult is the payload of an append_table operation.
type AppendTypedResult struct {
	results.Envelope
	SheetID   int64 `json:"sheet_id"`
	RowsAdded int   `json:"rows_added"`
}

// AppendTyped appends rows through a batchUpdate AppendCells request so that
// cell types survive: booleans, numbers, and formulas (strings starting with
// "=") keep their type instead of arriving as text. The sheet name is
// resolved to its sheet ID from the spreadsheet metadata.
func (c *Client) AppendTyped(ctx context.Context, spreadsheetID, sheet string, rows [][]any) (*AppendTypedResult, error) {
	meta, err := c.svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err, spreadsheetID)
	}

	var sheetID int64
	found := false
	for _, s := range meta.Sheets {
		if s.Properties != nil && s.Properties.Title == sheet {
			sheetID = s.Properties.SheetId
			found = true
			break
		}
	}
	if !found {
		return nil, gofererrors.NewNotFoundError(
			fmt.Sprintf("Sheet '%s' not found in spreadsheet", sheet), nil)
	}

	rowData := make([]*gsheets.RowData, 0, len(rows))
	for _, row := range rows {
		cells := make([]*gsheets.CellData, 0, len(row))
		for _, cell := range row {
			cells = append(cells, typedCell(cell))
		}
		rowData = append(rowData, &gsheets.RowData{Values: cells})
	}

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AppendCells: &gsheets.AppendCellsRequest{
				SheetId: sheetID,
				Rows:    rowData,
				Fields:  "*",
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do(); err != nil {
		return nil, wrapAPIError(err, spreadsheetID)
	}

	return &AppendTypedResult{
		Envelope:  results.OK(),
		SheetID:   sheetID,
		RowsAdded: len(rows),
	}, nil
}

// typedCell maps a JSON value onto a typed cell. Nil becomes an empty string
// cell; values of any other type are stringified.
func typedCell(value any) *gsheets.CellData {
	ev := &gsheets.ExtendedValue{}
	switch v := value.(type) {
	case nil:
		s := ""
		ev.StringValue = &s
	case bool:
		ev.BoolValue = &v
	case float64:
		ev.NumberValue = &v
	case int:
		f := float64(v)
		ev.NumberValue = &f
	case int64:
		f := float64(v)
		ev.NumberValue = &f
	case string:
		if strings.HasPrefix(v, "=") {
			ev.FormulaValue = &v
		} else {
			ev.StringValue = &v
		}
	default:
		s := fmt.Sprint(v)
		ev.StringValue = &s
	}
	return &gsheets.CellData{UserEnteredValue: ev}
}
