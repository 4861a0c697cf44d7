package parsers

import "reflect"

// Typed accessors over the generic tag tree the NBT decoder produces.
// Compounds decode to map[string]any, lists to []any and scalars to their
// closest Go type; every accessor fails with a FormatError on a shape
// mismatch instead of panicking on a bad assertion. Integer widths vary by
// tag type (byte/short/int/long), so the integer accessor widens them all.

func compoundAt(c map[string]any, key, path string) (map[string]any, error) {
	v, ok := c[key]
	if !ok {
		return nil, formatErrorf(path, "missing compound %q", key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, formatErrorf(path, "%q is not a compound (got %T)", key, v)
	}
	return m, nil
}

func listAt(c map[string]any, key, path string) ([]any, error) {
	v, ok := c[key]
	if !ok {
		return nil, formatErrorf(path, "missing list %q", key)
	}
	if l, ok := v.([]any); ok {
		return l, nil
	}
	// Homogeneous lists can decode as typed slices; normalize those.
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, formatErrorf(path, "%q is not a list (got %T)", key, v)
	}
	l := make([]any, rv.Len())
	for i := range l {
		l[i] = rv.Index(i).Interface()
	}
	return l, nil
}

func asInt(v any) (int32, bool) {
	switch n := v.(type) {
	case int8:
		return int32(n), true
	case int16:
		return int32(n), true
	case int32:
		return n, true
	case int64:
		return int32(n), true
	default:
		return 0, false
	}
}

// compoundReader reads fields out of one compound with a sticky error, so a
// run of extractions only needs a single check at the end.
type compoundReader struct {
	c    map[string]any
	path string
	err  error
}

func (r *compoundReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	v, ok := r.c[key]
	if !ok {
		r.err = formatErrorf(r.path, "missing string %q", key)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.err = formatErrorf(r.path, "%q is not a string (got %T)", key, v)
		return ""
	}
	return s
}

func (r *compoundReader) integer(key string) int32 {
	if r.err != nil {
		return 0
	}
	v, ok := r.c[key]
	if !ok {
		r.err = formatErrorf(r.path, "missing integer %q", key)
		return 0
	}
	n, ok := asInt(v)
	if !ok {
		r.err = formatErrorf(r.path, "%q is not an integer (got %T)", key, v)
		return 0
	}
	return n
}

func (r *compoundReader) boolean(key string) bool {
	return r.integer(key) != 0
}

func (r *compoundReader) stringList(key string) []string {
	if r.err != nil {
		return nil
	}
	l, err := listAt(r.c, key, r.path)
	if err != nil {
		r.err = err
		return nil
	}
	out := make([]string, 0, len(l))
	for i, v := range l {
		s, ok := v.(string)
		if !ok {
			r.err = formatErrorf(r.path, "%q[%d] is not a string (got %T)", key, i, v)
			return nil
		}
		out = append(out, s)
	}
	return out
}
