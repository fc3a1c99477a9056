package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Report is one benchmark run, appended as a JSON line to a report file.
type Report struct {
	RunID     string    `json:"run_id"`
	Time      time.Time `json:"time"`
	Corpus    string    `json:"corpus"`
	Documents int       `json:"documents"`
	Tolerance int       `json:"tolerance"`
	Results   []Result  `json:"results"`
}

// NewReport creates a report with a fresh run ID.
func NewReport(corpus string, documents int, cfg Config, results []Result) Report {
	return Report{
		RunID:     uuid.NewString(),
		Time:      time.Now().UTC(),
		Corpus:    corpus,
		Documents: documents,
		Tolerance: cfg.Tolerance,
		Results:   results,
	}
}

// AppendReport appends r to the file at path. Concurrent runs writing the
// same file are serialised by a lock file next to it.
func AppendReport(ctx context.Context, path string, r Report) (err error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, 250*time.Millisecond)
	if err != nil {
		return fmt.Errorf("locking %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("locking %s: not acquired", path)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("unlocking %s: %w", path, unlockErr)
		}
	}()

	line, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}

// ReadReports reads every report appended to path.
func ReadReports(path string) ([]Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer func() { _ = f.Close() }()

	var reports []Report
	dec := json.NewDecoder(f)
	for dec.More() {
		var r Report
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("decoding report %d: %w", len(reports), err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}
