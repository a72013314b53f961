package schedule

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	appLog "archecal/internal/log"
)

// Well-known file names scanned in the data directory at startup.
const (
	BusyWeekFile  = "busy_week.xlsx"
	QuietWeekFile = "quiet_week.xlsx"
)

// ReadTable reads the first sheet of an xlsx workbook into a raw Table.
// The first row is taken as the header. A workbook that cannot be opened
// or has no header row is an input shape error.
func ReadTable(r io.Reader, source string) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook %s: %w", source, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("workbook %s has no sheets", source)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q of %s: %w", sheets[0], source, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("workbook %s: sheet %q is empty", source, sheets[0])
	}

	return Table{
		Source: source,
		Header: rows[0],
		Rows:   rows[1:],
	}, nil
}

// Load reads one uploaded workbook into a Schedule. The variant is taken
// from the file name; when neither "busy" nor "quiet" appears the file is
// treated as the busy week and the silent default is logged so the user
// can see what happened.
func Load(r io.Reader, fileName string, obs Observer) (*Schedule, error) {
	variant, recognized := DetectVariant(fileName)
	if !recognized {
		appLog.Info("variant not recognized in file name, defaulting to busy", "file", fileName)
	}

	table, err := ReadTable(r, fileName)
	if err != nil {
		return nil, err
	}

	events := Normalize(table, obs)

	sched := &Schedule{
		Variant: variant,
		Source:  fileName,
		FileID:  uuid.New().String(),
		Events:  events,
	}

	appLog.Info("schedule loaded",
		"file", fileName,
		"file_id", sched.FileID,
		"variant", string(variant),
		"event_count", len(events),
	)

	return sched, nil
}

// LoadDataDir scans dir for the two well-known week files and loads each
// one that exists into the store. Per-file errors are logged and returned
// but never abort the other file; a failed load leaves that variant
// untouched.
func LoadDataDir(dir string, store *Store, obs Observer) []error {
	errs := make([]error, 0)

	for _, name := range []string{BusyWeekFile, QuietWeekFile} {
		path := filepath.Join(dir, name)

		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			appLog.Error("data dir open failed", err, "path", path)
			errs = append(errs, err)
			continue
		}

		sched, err := Load(f, name, obs)
		f.Close()
		if err != nil {
			appLog.Error("data dir load failed", err, "path", path)
			errs = append(errs, err)
			continue
		}

		store.Replace(sched)
	}

	return errs
}
