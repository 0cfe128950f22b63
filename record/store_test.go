package record

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/mazzegi/paramx/param"
	"github.com/mazzegi/paramx/testx"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func testResult(kase string, passed bool, startedOn time.Time) param.Result {
	return param.Result{
		Suite:     "TestDemo",
		Case:      kase,
		Passed:    passed,
		StartedOn: startedOn,
		Duration:  25 * time.Millisecond,
	}
}

func TestStoreRecordHistory(t *testing.T) {
	tx := testx.NewTx(t)
	s := setupStore(t)

	t0 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	results := []param.Result{
		testResult("test_foo_1", true, t0),
		testResult("test_foo_1", false, t0.Add(time.Hour)),
		testResult("test_foo_2", true, t0),
	}
	for _, res := range results {
		tx.AssertNoErr(s.Record(res))
	}

	history, err := s.History("TestDemo", "test_foo_1")
	tx.AssertNoErr(err)
	tx.AssertEqual(2, len(history))
	tx.AssertEqual(results[0], history[0])
	tx.AssertEqual(results[1], history[1])

	history, err = s.History("TestDemo", "test_nosuch")
	tx.AssertNoErr(err)
	tx.AssertEqual(0, len(history))
}

func TestStoreSummarize(t *testing.T) {
	tx := testx.NewTx(t)
	s := setupStore(t)

	t0 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tx.AssertNoErr(s.Record(testResult("test_foo_1", true, t0)))
	tx.AssertNoErr(s.Record(testResult("test_foo_2", false, t0)))
	tx.AssertNoErr(s.Record(testResult("test_foo_3", true, t0)))

	sum, err := s.Summarize("TestDemo")
	tx.AssertNoErr(err)
	tx.AssertEqual(Summary{
		Suite:    "TestDemo",
		Total:    3,
		Passed:   2,
		Failed:   1,
		Duration: 75 * time.Millisecond,
	}, sum)

	sum, err = s.Summarize("TestNoSuch")
	tx.AssertNoErr(err)
	tx.AssertEqual(0, sum.Total)
}

func TestStorePrune(t *testing.T) {
	tx := testx.NewTx(t)
	s := setupStore(t)

	t0 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tx.AssertNoErr(s.Record(testResult("test_foo_1", true, t0)))
	tx.AssertNoErr(s.Record(testResult("test_foo_1", true, t0.Add(time.Hour))))

	n, err := s.Prune(t0.Add(time.Minute))
	tx.AssertNoErr(err)
	tx.AssertEqual(int64(1), n)

	history, err := s.History("TestDemo", "test_foo_1")
	tx.AssertNoErr(err)
	tx.AssertEqual(1, len(history))
	tx.AssertTrue(history[0].StartedOn.Equal(t0.Add(time.Hour)))
}

func TestStoreOpenFile(t *testing.T) {
	tx := testx.NewTx(t)
	file := filepath.Join(t.TempDir(), "results.db")
	s, err := Open(file)
	tx.AssertNoErr(err)
	defer s.Close()

	t0 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tx.AssertNoErr(s.Record(testResult("test_foo_1", true, t0)))
	tx.AssertNoErr(s.Record(testResult("test_foo_1", false, t0.Add(time.Hour))))

	// the read-only reader sees what the writer committed
	history, err := s.History("TestDemo", "test_foo_1")
	tx.AssertNoErr(err)
	tx.AssertEqual(2, len(history))
	tx.AssertEqual(true, history[0].Passed)
	tx.AssertEqual(false, history[1].Passed)

	// reopening the same file finds the persisted results
	s.Close()
	s2, err := Open(file)
	tx.AssertNoErr(err)
	defer s2.Close()
	history, err = s2.History("TestDemo", "test_foo_1")
	tx.AssertNoErr(err)
	tx.AssertEqual(2, len(history))
}

func TestStoreObservesSuite(t *testing.T) {
	tx := testx.NewTx(t)
	s := setupStore(t)

	suite := param.NewSuite()
	suite.Notify(s)
	suite.Params("test_add", func(t *testing.T, c *param.Spec) {
		testx.AssertEqual(t, c.Int(2), c.Int(0)+c.Int(1))
	}, param.C(1, 2, 3), param.C(2, 3, 5))
	suite.Run(t)

	sum, err := s.Summarize(t.Name())
	tx.AssertNoErr(err)
	tx.AssertEqual(2, sum.Total)
	tx.AssertEqual(2, sum.Passed)
}
