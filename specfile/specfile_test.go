package specfile

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/mazzegi/paramx/param"
	"github.com/mazzegi/paramx/testx"
)

const testSpecs = `
[small]
args = [1, 2]

[small.kw]
bound = 10

[large]
args = [100, 200]
`

func TestLoad(t *testing.T) {
	tx := testx.NewTx(t)
	path := filepath.Join(t.TempDir(), "specs.toml")
	err := os.WriteFile(path, []byte(testSpecs), 0644)
	tx.AssertNoErr(err)

	m, err := Load(path)
	tx.AssertNoErr(err)
	tx.AssertEqual(2, len(m))

	small, ok := m["small"]
	tx.AssertTrue(ok)
	tx.AssertEqual([]any{int64(1), int64(2)}, small.Args())
	tx.AssertEqual(10, small.IntKW("bound", 0))

	large, ok := m["large"]
	tx.AssertTrue(ok)
	tx.AssertEqual([]any{int64(100), int64(200)}, large.Args())
}

func TestLoadFS(t *testing.T) {
	tx := testx.NewTx(t)
	fsys := fstest.MapFS{
		"specs.toml": &fstest.MapFile{Data: []byte(testSpecs)},
	}
	m, err := LoadFS(fsys, "specs.toml")
	tx.AssertNoErr(err)
	tx.AssertEqual(2, len(m))
}

func TestLoadMissingFile(t *testing.T) {
	tx := testx.NewTx(t)
	_, err := Load(filepath.Join(t.TempDir(), "nosuch.toml"))
	tx.AssertErr(err)
}

func TestLoadedMapExpands(t *testing.T) {
	tx := testx.NewTx(t)
	fsys := fstest.MapFS{
		"specs.toml": &fstest.MapFile{Data: []byte(testSpecs)},
	}
	m, err := LoadFS(fsys, "specs.toml")
	tx.AssertNoErr(err)

	var res []int
	s := param.NewSuite()
	s.Params("test_sum", func(t *testing.T, c *param.Spec) {
		res = append(res, c.Int(0)+c.Int(1))
	}, m)
	s.Run(t)
	// sorted key order: large before small
	tx.AssertEqual([]int{300, 3}, res)
}
