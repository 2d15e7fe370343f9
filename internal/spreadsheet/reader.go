package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"

	"printbulk/internal/logger"
	"printbulk/internal/models"
)

// Column names are matched exactly, including case.
const (
	ColProductName = "PRODUCT NAME"
	ColProductID   = "PRODUCT ID"
	ColVariant     = "Variant"
	ColFrontDesign = "FRONT DESIGN"
	ColBackDesign  = "BACK DESIGN"
	ColInsideLabel = "INSIDE NECK LABEL URL"
	ColRetailPrice = "RETAIL PRICE"
)

var requiredColumns = []string{ColProductName, ColProductID, ColVariant, ColFrontDesign, ColBackDesign}

type Reader struct {
	logger   *logger.Logger
	validate *validator.Validate
}

func New(logger *logger.Logger) *Reader {
	return &Reader{
		logger:   logger,
		validate: validator.New(),
	}
}

// Load reads a .csv or .xlsx file into validated rows. An unsupported
// extension or a missing required column is a fatal load error; a row
// that fails coercion or validation is logged and skipped.
func (r *Reader) Load(path string) ([]models.Row, error) {
	var records []record
	var err error

	switch {
	case strings.HasSuffix(path, ".csv"):
		records, err = r.parseCSV(path)
	case strings.HasSuffix(path, ".xlsx"):
		records, err = r.parseXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file format %q: use .csv or .xlsx", path)
	}
	if err != nil {
		return nil, err
	}

	var rows []models.Row
	for _, rec := range records {
		row, err := r.buildRow(rec)
		if err != nil {
			r.logger.Error("Skipping row %d: %v", rec.line, err)
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// record is one data row keyed by header name, with its source line.
type record struct {
	fields map[string]string
	line   int
}

func (r *Reader) buildRow(rec record) (models.Row, error) {
	productID, err := strconv.ParseInt(rec.fields[ColProductID], 10, 64)
	if err != nil {
		return models.Row{}, fmt.Errorf("invalid %s %q", ColProductID, rec.fields[ColProductID])
	}

	variantID, err := strconv.ParseInt(rec.fields[ColVariant], 10, 64)
	if err != nil {
		return models.Row{}, fmt.Errorf("invalid %s %q", ColVariant, rec.fields[ColVariant])
	}

	row := models.Row{
		ProductName: rec.fields[ColProductName],
		ProductID:   productID,
		VariantID:   variantID,
		FrontDesign: rec.fields[ColFrontDesign],
		BackDesign:  rec.fields[ColBackDesign],
		InsideLabel: rec.fields[ColInsideLabel],
		RetailPrice: rec.fields[ColRetailPrice],
		SourceLine:  rec.line,
	}

	if err := r.validate.Struct(row); err != nil {
		return models.Row{}, fmt.Errorf("validation failed: %w", err)
	}

	return row, nil
}

func checkRequiredColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("missing required column %q", col)
		}
	}
	return nil
}

func (r *Reader) parseCSV(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Hand-edited files often omit trailing optional cells; missing
	// fields default to "" below instead of failing the whole load.
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	if err := checkRequiredColumns(headers); err != nil {
		return nil, err
	}

	var records []record
	line := 1
	for {
		values, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading line %d: %w", line+1, err)
		}
		line++

		fields := make(map[string]string)
		for i, value := range values {
			if i < len(headers) {
				fields[headers[i]] = strings.TrimSpace(value)
			}
		}
		records = append(records, record{fields: fields, line: line})
	}

	return records, nil
}

func (r *Reader) parseXLSX(path string) ([]record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	excelRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(excelRows) < 1 {
		return nil, fmt.Errorf("file has no header row")
	}

	headers := excelRows[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	if err := checkRequiredColumns(headers); err != nil {
		return nil, err
	}

	var records []record
	for rowIdx, excelRow := range excelRows[1:] {
		fields := make(map[string]string)
		for i, value := range excelRow {
			if i < len(headers) {
				fields[headers[i]] = strings.TrimSpace(value)
			}
		}
		records = append(records, record{fields: fields, line: rowIdx + 2})
	}

	return records, nil
}
