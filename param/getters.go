package param

import "github.com/mazzegi/paramx/convert"

// Typed accessors for test bodies. Positional getters return the zero value
// for missing or unconvertible arguments; keyword getters fall back to the
// given default, which is how keyword defaults are expressed.

func (c *Spec) String(i int) string {
	v, ok := c.Arg(i)
	if !ok {
		return ""
	}
	return convert.String(v)
}

func (c *Spec) Int(i int) int {
	v, ok := c.Arg(i)
	if !ok {
		return 0
	}
	n, _ := convert.Int(v)
	return n
}

func (c *Spec) Float(i int) float64 {
	v, ok := c.Arg(i)
	if !ok {
		return 0
	}
	f, _ := convert.Float(v)
	return f
}

func (c *Spec) Bool(i int) bool {
	v, ok := c.Arg(i)
	if !ok {
		return false
	}
	return convert.Bool(v)
}

func (c *Spec) StringKW(name string, def string) string {
	v, ok := c.Keyword(name)
	if !ok {
		return def
	}
	return convert.String(v)
}

func (c *Spec) IntKW(name string, def int) int {
	v, ok := c.Keyword(name)
	if !ok {
		return def
	}
	n, ok := convert.Int(v)
	if !ok {
		return def
	}
	return n
}

func (c *Spec) FloatKW(name string, def float64) float64 {
	v, ok := c.Keyword(name)
	if !ok {
		return def
	}
	f, ok := convert.Float(v)
	if !ok {
		return def
	}
	return f
}

func (c *Spec) BoolKW(name string, def bool) bool {
	v, ok := c.Keyword(name)
	if !ok {
		return def
	}
	return convert.Bool(v)
}
