package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// ExportFormat defines the available export formats
type ExportFormat int

const (
	// ExportFormatJSON exports the full report as a JSON document
	ExportFormatJSON ExportFormat = iota
	// ExportFormatJSONL exports one JSON object per entry, one per line
	ExportFormatJSONL
	// ExportFormatCSV exports the entries as comma-separated values
	ExportFormatCSV
)

// String returns a human-readable representation of the export format
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSON:
		return "json"
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSON:
		return ".json"
	case ExportFormatJSONL:
		return ".jsonl"
	case ExportFormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// ExportConfig holds configuration options for export
type ExportConfig struct {
	// Format specifies the export format
	Format ExportFormat

	// PrettyPrint enables indented output for the JSON format
	PrettyPrint bool

	// IncludeHeader includes a header row in CSV export
	IncludeHeader bool

	// ReviewOnly limits the export to entries flagged for review
	ReviewOnly bool
}

// DefaultExportConfig returns sensible defaults for export configuration
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:        ExportFormatJSON,
		PrettyPrint:   false,
		IncludeHeader: true,
		ReviewOnly:    false,
	}
}

// Exporter writes review reports in the configured format
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{config: DefaultExportConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{config: config}
}

// Export writes the report to w in the configured format
func (e *Exporter) Export(r *Report, w io.Writer) error {
	switch e.config.Format {
	case ExportFormatJSON:
		return e.exportJSON(r, w)
	case ExportFormatJSONL:
		return e.exportJSONL(r, w)
	case ExportFormatCSV:
		return e.exportCSV(r, w)
	default:
		return fmt.Errorf("unsupported export format: %d", e.config.Format)
	}
}

// ExportToFile writes the report to the named file
func (e *Exporter) ExportToFile(r *Report, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()
	return e.Export(r, f)
}

// ExportToString renders the report as a string
func (e *Exporter) ExportToString(r *Report) (string, error) {
	var sb strings.Builder
	if err := e.Export(r, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (e *Exporter) entries(r *Report) []Entry {
	if !e.config.ReviewOnly {
		return r.Entries
	}
	out := make([]Entry, 0, r.ReviewCount)
	for _, entry := range r.Entries {
		if entry.NeedsReview {
			out = append(out, entry)
		}
	}
	return out
}

func (e *Exporter) exportJSON(r *Report, w io.Writer) error {
	doc := *r
	doc.Entries = e.entries(r)

	var data []byte
	var err error
	if e.config.PrettyPrint {
		data, err = sonic.MarshalIndent(doc, "", "  ")
	} else {
		data, err = sonic.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (e *Exporter) exportJSONL(r *Report, w io.Writer) error {
	for _, entry := range e.entries(r) {
		data, err := sonic.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry for %s: %w", entry.PageName, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return nil
}

func (e *Exporter) exportCSV(r *Report, w io.Writer) error {
	cw := csv.NewWriter(w)

	if e.config.IncludeHeader {
		header := []string{"position", "page_name", "scan_index", "system", "raw_text", "value", "confidence", "needs_review", "reasoning"}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, entry := range e.entries(r) {
		row := []string{
			strconv.Itoa(entry.Position),
			entry.PageName,
			strconv.Itoa(entry.ScanIndex),
			entry.System,
			entry.RawText,
			strconv.Itoa(entry.Value),
			strconv.FormatFloat(entry.Confidence, 'f', -1, 64),
			strconv.FormatBool(entry.NeedsReview),
			entry.Reasoning,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
