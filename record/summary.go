package record

import (
	"fmt"
	"time"

	"github.com/mazzegi/paramx/convert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary aggregates all recorded outcomes of one suite.
type Summary struct {
	Suite    string
	Total    int
	Passed   int
	Failed   int
	Duration time.Duration
}

var printer = message.NewPrinter(language.English)

func (sum Summary) String() string {
	return printer.Sprintf("%s: %d results, %d passed, %d failed, %v total",
		sum.Suite, sum.Total, sum.Passed, sum.Failed, sum.Duration)
}

// Summarize aggregates the recorded outcomes of one suite.
func (s *Store) Summarize(suite string) (Summary, error) {
	rows, err := s.reader.Query(
		`SELECT COUNT(*), COALESCE(SUM(passed),0), COALESCE(SUM(duration_us),0)
		 FROM results WHERE suite = ?;`,
		suite,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("query-summary: %w", err)
	}
	defer rows.Close()
	sum := Summary{Suite: suite}
	if !rows.Next() {
		return sum, rows.Err()
	}
	var total, passed, durationUs any
	err = rows.Scan(&total, &passed, &durationUs)
	if err != nil {
		return Summary{}, fmt.Errorf("rows-scan: %w", err)
	}
	sum.Total, _ = convert.Int(total)
	sum.Passed, _ = convert.Int(passed)
	sum.Failed = sum.Total - sum.Passed
	us, _ := convert.Int(durationUs)
	sum.Duration = time.Duration(us) * time.Microsecond
	return sum, rows.Err()
}
