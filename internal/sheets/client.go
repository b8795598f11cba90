package sheets

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/fdg312/workout-helper/internal/config"
)

var ErrTabNotFound = errors.New("sheet tab not found")

// Client wraps the Google Sheets API for a single spreadsheet.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewClient authenticates with the service-account credentials from the
// environment and returns a client bound to the configured spreadsheet.
func NewClient(ctx context.Context, cfg config.GoogleConfig) (*Client, error) {
	conf := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		TokenURL:   google.JWTTokenURL,
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SheetsID,
	}, nil
}

// ReadGrid fetches columns A–H of the tab as a 2-D string grid.
// Row 0 is the header row; an empty tab yields an empty grid.
func (c *Client) ReadGrid(ctx context.Context, tab string) ([][]string, error) {
	rangeName := fmt.Sprintf("%s!A:H", tab)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rangeName, err)
	}
	return toStringGrid(resp.Values), nil
}

// ReadHeader fetches the first header row of the tab (A1:Z1).
func (c *Client) ReadHeader(ctx context.Context, tab string) ([]string, error) {
	rangeName := fmt.Sprintf("%s!A1:Z1", tab)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rangeName, err)
	}
	grid := toStringGrid(resp.Values)
	if len(grid) == 0 {
		return nil, nil
	}
	return grid[0], nil
}

// Append adds rows after the used range with raw value interpretation and
// row-insertion semantics, and returns the range reference the API reports
// as actually written.
func (c *Client) Append(ctx context.Context, tab string, rows [][]string) (string, error) {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	rangeName := fmt.Sprintf("%s!A:H", tab)
	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rangeName, &sheetsapi.ValueRange{
		Values: values,
	}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("append to %s: %w", rangeName, err)
	}
	if resp.Updates == nil {
		return "", nil
	}
	return resp.Updates.UpdatedRange, nil
}

// SheetID maps a tab's display title to its internal numeric identifier,
// needed for cell formatting requests.
func (c *Client) SheetID(ctx context.Context, tab string) (int64, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("read spreadsheet metadata: %w", err)
	}

	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == tab {
			return sheet.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrTabNotFound, tab)
}

// SetTextColor recolors the text of rows startRow..endRow (1-based,
// inclusive) across the first cols columns.
func (c *Client) SetTextColor(ctx context.Context, sheetID, startRow, endRow, cols int64, red, green, blue float64) error {
	requests := []*sheetsapi.Request{
		{
			RepeatCell: &sheetsapi.RepeatCellRequest{
				Range: &sheetsapi.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    startRow - 1,
					EndRowIndex:      endRow,
					StartColumnIndex: 0,
					EndColumnIndex:   cols,
				},
				Cell: &sheetsapi.CellData{
					UserEnteredFormat: &sheetsapi.CellFormat{
						TextFormat: &sheetsapi.TextFormat{
							ForegroundColor: &sheetsapi.Color{
								Red:   red,
								Green: green,
								Blue:  blue,
							},
						},
					},
				},
				Fields: "userEnteredFormat.textFormat.foregroundColor",
			},
		},
	}

	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("format rows %d-%d: %w", startRow, endRow, err)
	}
	return nil
}

func toStringGrid(values [][]interface{}) [][]string {
	grid := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprintf("%v", cell)
		}
		grid[i] = cells
	}
	return grid
}
