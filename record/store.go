// Package record persists per-case outcomes of expanded test suites into a
// sqlite database, so runs can be compared across invocations (e.g. to spot
// flaky cases). A Store is a param.Observer; hook it into a suite with
// Suite.Notify.
package record

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mazzegi/log"
	"github.com/mazzegi/paramx/convert"
	"github.com/mazzegi/paramx/param"
)

const initStmt = `
CREATE TABLE IF NOT EXISTS results (
	suite 		TEXT,
	kase   		TEXT,
	passed 		INTEGER,
	started_on 	TEXT,
	duration_us INTEGER
);

CREATE INDEX IF NOT EXISTS idx_results_suite_kase ON results (suite, kase);
`

var _ param.Observer = (*Store)(nil)

type dbtx interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
}

type Store struct {
	writer dbtx
	reader dbtx
	close  func()
}

// Open creates or opens a file-backed store.
func Open(file string) (*Store, error) {
	writer, err := setupWriter(file)
	if err != nil {
		return nil, fmt.Errorf("setup-writer: %w", err)
	}
	reader, err := setupReader(file)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("setup-reader: %w", err)
	}
	s := &Store{
		writer: writer,
		reader: reader,
		close: func() {
			reader.Close()
			writer.Close()
		},
	}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	log.Debugf("record: opened store at %q", file)
	return s, nil
}

// NewStore wraps a caller-provided database.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{
		writer: db,
		reader: db,
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writer.Exec(initStmt)
	if err != nil {
		return fmt.Errorf("exec-init: %w", err)
	}
	return nil
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Record inserts one case outcome.
func (s *Store) Record(res param.Result) error {
	_, err := s.writer.Exec(
		`INSERT INTO results (suite, kase, passed, started_on, duration_us) VALUES (?,?,?,?,?);`,
		res.Suite, res.Case, res.Passed, res.StartedOn.UTC().Format(time.RFC3339Nano),
		res.Duration.Microseconds(),
	)
	if err != nil {
		return fmt.Errorf("exec-insert: %w", err)
	}
	return nil
}

// Observe implements param.Observer. Storage errors cannot fail the observed
// test, so they are logged only.
func (s *Store) Observe(res param.Result) {
	err := s.Record(res)
	if err != nil {
		log.Errorf("record: observe %s/%s: %v", res.Suite, res.Case, err)
	}
}

// History returns all recorded outcomes for one case, oldest first.
func (s *Store) History(suite, kase string) ([]param.Result, error) {
	rows, err := s.reader.Query(
		`SELECT suite, kase, passed, started_on, duration_us FROM results
		 WHERE suite = ? AND kase = ? ORDER BY started_on ASC;`,
		suite, kase,
	)
	if err != nil {
		return nil, fmt.Errorf("query-history: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

// Prune deletes all outcomes recorded before the given time.
func (s *Store) Prune(before time.Time) (int64, error) {
	res, err := s.writer.Exec(
		`DELETE FROM results WHERE started_on < ?;`,
		before.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("exec-delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows-affected: %w", err)
	}
	log.Debugf("record: pruned %d results before %s", n, before.Format(time.RFC3339))
	return n, nil
}

func scanResults(rows *sql.Rows) ([]param.Result, error) {
	var results []param.Result
	for rows.Next() {
		var (
			suite      sql.NullString
			kase       sql.NullString
			passed     sql.NullBool
			startedOn  sql.NullString
			durationUs sql.NullInt64
		)
		err := rows.Scan(&suite, &kase, &passed, &startedOn, &durationUs)
		if err != nil {
			return nil, fmt.Errorf("rows-scan: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, convert.String(startedOn))
		if err != nil {
			return nil, fmt.Errorf("parse started-on %q: %w", convert.String(startedOn), err)
		}
		us, _ := convert.Int(durationUs)
		results = append(results, param.Result{
			Suite:     convert.String(suite),
			Case:      convert.String(kase),
			Passed:    convert.Bool(passed),
			StartedOn: ts,
			Duration:  time.Duration(us) * time.Microsecond,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return results, nil
}
