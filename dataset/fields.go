package dataset

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

type record map[string]interface{}

// lookup returns the value of the first alias present with a non-null value
func (r record) lookup(keys []string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// number reads a non-negative finite number; anything else reads as 0 and ok=false
func (r record) number(keys []string) (float64, bool) {
	v, present := r.lookup(keys)
	if !present {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

// optionalNumber is number() for fields that render as "N/A" when missing
func (r record) optionalNumber(keys []string) *float64 {
	v, present := r.lookup(keys)
	if !present {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func (r record) boolean(keys []string) (bool, bool) {
	v, present := r.lookup(keys)
	if !present {
		return false, false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func (r record) str(keys []string) string {
	v, present := r.lookup(keys)
	if !present {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// stringList reads a list of strings, accepting a bare string as a one-element list.
// Empty entries are dropped.
func (r record) stringList(keys []string) []string {
	v, present := r.lookup(keys)
	if !present {
		return nil
	}
	var out []string
	switch t := v.(type) {
	case []interface{}:
		out = make([]string, 0, len(t))
		for _, item := range t {
			s, err := cast.ToStringE(item)
			if err != nil {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		out = make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	default:
		s, err := cast.ToStringE(v)
		if err == nil && strings.TrimSpace(s) != "" {
			out = []string{strings.TrimSpace(s)}
		}
	}
	return out
}

// records reads a list of objects, skipping entries that are not objects
func (r record) records(keys []string) (recs []record, skipped int) {
	v, present := r.lookup(keys)
	if !present {
		return nil, 0
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, 1
	}
	recs = make([]record, 0, len(items))
	for _, item := range items {
		m, ok := asRecord(item)
		if !ok {
			skipped++
			continue
		}
		recs = append(recs, m)
	}
	return recs, skipped
}

func asRecord(v interface{}) (record, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return record(m), true
	case record:
		return m, true
	}
	return nil, false
}
