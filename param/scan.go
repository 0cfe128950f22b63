package param

import (
	"fmt"
	"reflect"
	"strings"
)

// Scan binds a specification into a struct of type T: positional arguments
// fill exported fields in declaration order, keyword arguments fill fields by
// name or `param` tag (exact match first, then case-insensitive). Fields not
// covered stay at their zero value; use ScanInto with a preset target to
// express keyword defaults.
func Scan[T any](c *Spec) (T, error) {
	var t T
	err := ScanInto(c, &t)
	return t, err
}

// ScanInto is Scan over a caller-provided target, which may carry preset
// field values acting as keyword defaults.
func ScanInto[T any](c *Spec, target *T) error {
	rv := reflect.ValueOf(target).Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("cannot scan into non-struct type %T", *target)
	}
	ty := rv.Type()

	// positional args fill exported fields in declaration order
	fieldIdx := 0
	filled := map[int]bool{}
	for i := 0; i < c.NArgs(); i++ {
		for fieldIdx < ty.NumField() && !ty.Field(fieldIdx).IsExported() {
			fieldIdx++
		}
		if fieldIdx >= ty.NumField() {
			return fmt.Errorf("too many positional args for %s (%d fields)", ty.String(), ty.NumField())
		}
		arg, _ := c.Arg(i)
		if err := setField(rv.Field(fieldIdx), arg); err != nil {
			return fmt.Errorf("arg %d: %w", i, err)
		}
		filled[fieldIdx] = true
		fieldIdx++
	}

	// keyword args fill fields by name or tag
	for _, kw := range c.kws {
		idx, ok := findField(ty, kw.name)
		if !ok {
			return fmt.Errorf("no field in %s for keyword %q", ty.String(), kw.name)
		}
		if filled[idx] {
			return fmt.Errorf("field %s got both a positional and a keyword value", ty.Field(idx).Name)
		}
		if err := setField(rv.Field(idx), kw.value); err != nil {
			return fmt.Errorf("keyword %q: %w", kw.name, err)
		}
		filled[idx] = true
	}
	return nil
}

func setField(toElem reflect.Value, v any) error {
	if !toElem.CanSet() {
		return fmt.Errorf("cannot set %s", toElem.Type().String())
	}
	if v == nil {
		toElem.Set(reflect.Zero(toElem.Type()))
		return nil
	}
	rvSrc := reflect.ValueOf(v)
	if !rvSrc.CanConvert(toElem.Type()) {
		return fmt.Errorf("cannot convert %T to %s", v, toElem.Type().String())
	}
	toElem.Set(rvSrc.Convert(toElem.Type()))
	return nil
}

func findField(ty reflect.Type, name string) (int, bool) {
	fold := -1
	for i := 0; i < ty.NumField(); i++ {
		sf := ty.Field(i)
		if !sf.IsExported() {
			continue
		}
		fieldName := sf.Name
		if tag := sf.Tag.Get("param"); tag != "" {
			fieldName, _, _ = strings.Cut(tag, ",")
		}
		if fieldName == name {
			return i, true
		}
		if fold < 0 && strings.EqualFold(fieldName, name) {
			fold = i
		}
	}
	if fold >= 0 {
		return fold, true
	}
	return 0, false
}
