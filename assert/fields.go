package assert

import (
	"fmt"
	"sort"
	"strings"
)

// Fields the values printed next to a failed assertion
type Fields map[string]interface{}

func (f Fields) String() string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v:%v", k, f[k])
	}
	return strings.Join(parts, ",")
}
