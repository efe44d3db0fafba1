package candidate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/budget-select/pkg/constants"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// Dataset is a prepared candidate set together with its cleaning report.
type Dataset struct {
	Name       string
	Path       string
	Schema     Schema
	Candidates []Candidate
	Report     Report
}

// ReadRecords decodes a Latin-1, ';'-separated stream. The first row is the
// header; rows may carry any number of fields. An empty stream yields no
// header, no rows and no error.
func ReadRecords(r io.Reader) ([]string, []RawRecord, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.Comma = constants.FieldSeparator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = cleanHeaderCell(header[i])
	}

	var rows []RawRecord
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, RawRecord{Line: line, Fields: fields})
	}
	return header, rows, nil
}

// Load reads and prepares candidates from r.
func Load(logger *zap.Logger, name string, r io.Reader, ceiling float64) (*Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	header, rows, err := ReadRecords(r)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}

	schema, diagnostics := DetectSchema(header)
	if header == nil {
		// nothing to detect on an empty source
		diagnostics = nil
	}
	for _, diagnostic := range diagnostics {
		logger.Warn("dataset header diagnostic: "+diagnostic,
			zap.String("op", "candidate.Load"),
			zap.String("dataset", name),
		)
	}

	candidates, report := Prepare(rows, ceiling)
	report.Schema = schema
	report.Diagnostics = diagnostics

	for _, d := range report.Discards {
		logger.Debug("row discarded",
			zap.String("op", "candidate.Load"),
			zap.String("dataset", name),
			zap.Int("line", d.Line),
			zap.String("id", d.ID),
			zap.String("reason", string(d.Reason)),
			zap.String("detail", d.Detail),
		)
	}

	fields := []zap.Field{
		zap.String("op", "candidate.Load"),
		zap.String("dataset", name),
		zap.String("schema", string(schema)),
		zap.Int("rows", report.RowsRead),
		zap.Int("accepted", report.Accepted),
		zap.Int("discarded", report.Discarded()),
	}
	counts := report.DiscardCounts()
	for _, reason := range report.DiscardReasons() {
		fields = append(fields, zap.Int("discarded."+string(reason), counts[reason]))
	}
	logger.Info("dataset prepared", fields...)

	return &Dataset{
		Name:       name,
		Schema:     schema,
		Candidates: candidates,
		Report:     report,
	}, nil
}

// LoadFile opens path and prepares its candidates. A missing file is reported
// as ErrInputMissing; nothing is read in that case.
func LoadFile(logger *zap.Logger, name, path string, ceiling float64) (*Dataset, error) {
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInputMissing, path, err)
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && logger != nil {
			logger.Warn("failed to close dataset file",
				zap.String("op", "candidate.LoadFile"),
				zap.String("path", path),
				zap.Error(closeErr),
			)
		}
	}()

	dataset, err := Load(logger, name, file, ceiling)
	if err != nil {
		return nil, err
	}
	dataset.Path = path
	return dataset, nil
}
