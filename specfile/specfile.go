// Package specfile loads named call specifications from TOML files, so
// parameter sets shared by several tests can live next to the testdata.
//
// Each top-level table is one case; "args" holds the positional arguments,
// the optional "kw" sub-table the keyword arguments:
//
//	[small]
//	args = [1, 2]
//
//	[small.kw]
//	bound = 10
package specfile

import (
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/mazzegi/paramx/param"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type fileSpec struct {
	Args []any          `toml:"args"`
	KW   map[string]any `toml:"kw"`
}

// Load reads a parameter map from the TOML file at path.
func Load(path string) (param.Map, error) {
	var raw map[string]fileSpec
	_, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode-file %q: %w", path, err)
	}
	return specMap(raw), nil
}

// LoadFS is Load over a file system, e.g. an embedded one.
func LoadFS(fsys fs.FS, path string) (param.Map, error) {
	var raw map[string]fileSpec
	_, err := toml.DecodeFS(fsys, path, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode-fs %q: %w", path, err)
	}
	return specMap(raw), nil
}

func specMap(raw map[string]fileSpec) param.Map {
	m := param.Map{}
	for name, fc := range raw {
		c := param.C(fc.Args...)
		kwNames := maps.Keys(fc.KW)
		slices.Sort(kwNames)
		for _, kwName := range kwNames {
			c.KW(kwName, fc.KW[kwName])
		}
		m[name] = c
	}
	return m
}
