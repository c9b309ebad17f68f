// Package psa reads probabilistic sensitivity analysis results from CSV and
// XLSX files and checks their one-row-per-strategy-per-run layout.
package psa

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/ceac-cli/internal/model"
)

// Options configures Load.
type Options struct {
	Format    string // "csv", "xlsx", or empty to pick by file extension
	HasHeader bool   // first record is a header row and is skipped
	Sheet     string // XLSX sheet name; empty means the first sheet
}

// recordReader is the row source shared by the CSV and XLSX paths.
type recordReader interface {
	Read() ([]string, error)
}

// Load reads PSA results from path. Columns are bound by position to the
// schema in model.PSAColumns, whatever the header says. Rows keep file order.
func Load(ctx context.Context, path string, opts Options) ([]model.PSAResult, error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	var (
		rows []model.PSAResult
		err  error
	)
	switch format {
	case "csv", "txt":
		rows, err = loadCSV(ctx, path, opts)
	case "xlsx":
		rows, err = loadXLSX(ctx, path, opts)
	default:
		return nil, eris.Errorf("psa: unsupported input format %q", format)
	}
	if err != nil {
		return nil, err
	}

	zap.L().Debug("psa: loaded results",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

func loadCSV(ctx context.Context, path string, opts Options) ([]model.PSAResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "psa: open csv")
	}
	defer f.Close() //nolint:errcheck

	return Decode(ctx, f, opts.HasHeader)
}

// Decode reads CSV-encoded PSA results from r.
func Decode(ctx context.Context, r io.Reader, hasHeader bool) ([]model.PSAResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // width is checked against the schema instead
	reader.TrimLeadingSpace = true

	return decodeRecords(ctx, reader, hasHeader)
}

func decodeRecords(ctx context.Context, r recordReader, hasHeader bool) ([]model.PSAResult, error) {
	line := 0
	if hasHeader {
		header, err := r.Read()
		if err == io.EOF {
			return nil, &InputSchemaError{Err: errors.New("input is empty")}
		}
		if err != nil {
			return nil, wrapReadError(err, 1)
		}
		line++
		if len(header) != len(model.PSAColumns) {
			return nil, &InputSchemaError{
				Line: line,
				Err:  eris.Wrapf(ErrColumnCount, "header has %d columns, schema has %d", len(header), len(model.PSAColumns)),
			}
		}
	}

	dec, err := csvutil.NewDecoder(r, model.PSAColumns...)
	if err != nil {
		return nil, eris.Wrap(err, "psa: init decoder")
	}

	var rows []model.PSAResult
	for {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "psa: context cancelled")
		}

		var row model.PSAResult
		err := dec.Decode(&row)
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, schemaError(err, line)
		}
		if err := checkFinite(row, line); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// schemaError converts a decoder failure into an InputSchemaError.
func schemaError(err error, line int) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return wrapReadError(err, line)
	}

	if errors.Is(err, csvutil.ErrFieldCount) {
		return &InputSchemaError{
			Line: line,
			Err:  eris.Wrapf(ErrColumnCount, "record width differs from schema of %d columns", len(model.PSAColumns)),
		}
	}

	se := &InputSchemaError{Line: line, Err: err}

	var decErr *csvutil.DecodeError
	if errors.As(err, &decErr) {
		se.Column = decErr.Field
		se.Err = decErr.Err
	}

	var typeErr *csvutil.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		se.Value = typeErr.Value
		se.Err = typeErr
	}

	return se
}

// checkFinite rejects NaN and infinite values in the columns NMB is built
// from. A NaN NMB never compares greater, so it would win its group.
func checkFinite(row model.PSAResult, line int) error {
	for _, c := range []struct {
		column string
		value  float64
	}{
		{"avg_disc_cost", row.AvgDiscCost},
		{"avg_disc_qaly_mult", row.AvgDiscQALYMult},
	} {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &InputSchemaError{
				Line:   line,
				Column: c.column,
				Value:  strconv.FormatFloat(c.value, 'g', -1, 64),
				Err:    ErrNotFinite,
			}
		}
	}
	return nil
}

func wrapReadError(err error, line int) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &InputSchemaError{Line: parseErr.Line, Err: parseErr.Err}
	}
	return &InputSchemaError{Line: line, Err: err}
}
