package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMergeConflict indicates two region fragments wrote different values
// to the same key path. Correctly disjoint region schemas never trigger it.
var ErrMergeConflict = errors.New("conflicting values at merge path")

// Mapping is the nested result structure produced by the pipeline. Keys
// are case ids, surface names, month names or temperature bins; most
// regions use string keys, but temperature bins and the steady-state case
// table keep their native cleansed key type.
type Mapping map[any]any

// Merge deep-merges src into m. Submaps are merged recursively; writing a
// value different from one already present at the same leaf path is an
// ErrMergeConflict.
func (m Mapping) Merge(src Mapping) error {
	return m.merge(src, "")
}

func (m Mapping) merge(src Mapping, path string) error {
	for k, v := range src {
		p := fmt.Sprintf("%s/%v", path, k)
		cur, ok := m[k]
		if !ok {
			m[k] = v
			continue
		}
		curMap, curIsMap := cur.(Mapping)
		srcMap, srcIsMap := v.(Mapping)
		if curIsMap && srcIsMap {
			if err := curMap.merge(srcMap, p); err != nil {
				return err
			}
			continue
		}
		if curIsMap != srcIsMap || cur != v {
			return fmt.Errorf("%w: %s", ErrMergeConflict, p)
		}
	}
	return nil
}

// MarshalJSON serializes the mapping with all keys rendered as strings,
// so integer-keyed fragments (temperature bins, numeric case ids) stay
// representable in JSON output.
func (m Mapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.stringKeyed())
}

func (m Mapping) stringKeyed() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := fmt.Sprintf("%v", k)
		if sub, ok := v.(Mapping); ok {
			out[key] = sub.stringKeyed()
		} else {
			out[key] = v
		}
	}
	return out
}
