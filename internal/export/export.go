// Package export writes report rows to timestamped JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps report rows with run metadata so downstream consumers can
// tell separate runs over the same dataset apart.
type Envelope struct {
	RunID       string `json:"run_id"`
	Report      string `json:"report"`
	RowCount    int    `json:"row_count"`
	GeneratedAt string `json:"generated_at"`
	Rows        any    `json:"rows"`
}

// WriteJSON writes the rows for one report under baseDir and returns the
// path of the file it created. The output folder is created if missing.
func WriteJSON(baseDir, report string, rows any, rowCount int) (string, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	filename := timestampedFilename(baseDir, report)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	envelope := Envelope{
		RunID:       uuid.NewString(),
		Report:      report,
		RowCount:    rowCount,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:        rows,
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope); err != nil {
		return "", fmt.Errorf("failed to write JSON: %w", err)
	}

	return filename, nil
}

func timestampedFilename(baseDir, report string) string {
	t := time.Now().Format("20060102_150405")
	return filepath.Join(baseDir, fmt.Sprintf("%s_%s.json", report, t))
}
