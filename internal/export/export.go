// Write search results to disk: a CSV for spreadsheets and a JSON dump
// with the full records.

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-jobradar/internal/source"
)

// WriteCSV writes listings as a dated CSV file under dir and returns its path.
func WriteCSV(dir string, listings []source.Listing) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	filename := fmt.Sprintf("job-results-%s.csv", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Source", "Title", "Company", "Location", "URL", "MatchedKeyword", "FetchedAt"}); err != nil {
		return "", err
	}
	for _, l := range listings {
		row := []string{
			l.Source, l.Title, l.Company, l.Location, l.URL,
			l.MatchedKeyword, l.FetchedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return path, w.Error()
}

// WriteJSON writes the full records as a dated JSON file under dir.
func WriteJSON(dir string, listings []source.Listing) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	filename := fmt.Sprintf("job-results-%s.json", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(listings, "", " ")
	if err != nil {
		return "", fmt.Errorf("marshal listings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write json: %w", err)
	}
	return path, nil
}
