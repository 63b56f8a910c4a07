package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ccollicutt/logtally/pkg/analyzer"
)

// CSV block headers, in the order the blocks are written.
var (
	RequestsHeader     = []string{"IP Address", "Request Count"}
	MostAccessedHeader = []string{"Most Accessed Endpoint", "Access Count"}
	SuspiciousHeader   = []string{"Suspicious IP Address", "Failed Login Count"}
)

// WriteCSV writes the report as three CSV blocks separated by an empty record:
// requests per address, the most accessed endpoint, and suspicious addresses.
func WriteCSV(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)

	blocks := []struct {
		header []string
		rows   []analyzer.Entry
	}{
		{RequestsHeader, report.Requests},
		{MostAccessedHeader, []analyzer.Entry{report.MostAccessed}},
		{SuspiciousHeader, report.Suspicious},
	}

	for i, block := range blocks {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return err
			}
		}
		if err := cw.Write(block.header); err != nil {
			return err
		}
		for _, e := range block.rows {
			if err := cw.Write([]string{e.Key, strconv.Itoa(e.Count)}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the report to path, replacing any existing file.
// The data goes to a temporary file in the same directory first, so path is
// either fully written or left untouched.
func WriteCSVFile(path string, report *Report) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = WriteCSV(tmp, report); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("saving export file %s: %w", path, err)
	}

	return nil
}
