package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// File names written by WriteFiles.
const (
	CSVFile  = "report.csv"
	HTMLFile = "report.html"
)

// WriteFiles writes report.csv and report.html into dir, creating it if
// needed. Both files are attempted; the returned error combines failures.
func WriteFiles(dir string, rep Report) (csvPath, htmlPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create report dir: %w", err)
	}
	csvPath = filepath.Join(dir, CSVFile)
	htmlPath = filepath.Join(dir, HTMLFile)

	err = multierr.Combine(
		writeFile(csvPath, func(w io.Writer) error { return WriteCSV(w, rep) }),
		writeFile(htmlPath, func(w io.Writer) error { return WriteHTML(w, rep) }),
	)
	return csvPath, htmlPath, err
}

func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if err := render(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
