package puzzle

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry maps day names ("day4", "day16") to constructors. It is an
// ordinary value built by the caller at start-up; nothing registers itself.
type Registry map[string]Constructor

// Lookup resolves name to a constructor. A name starting with a digit gets
// the "day" prefix, so "16" and "day16" are equivalent; leading zeros are
// ignored ("day04" finds "day4").
func (r Registry) Lookup(name string) (string, Constructor, error) {
	key := normalize(name)
	c, ok := r[key]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownDay, name)
	}

	return key, c, nil
}

// Names returns the registered day names ordered by day number.
func (r Registry) Names() []string {
	names := maps.Keys(r)
	slices.SortFunc(names, func(a, b string) int {
		if da, db := dayNumber(a), dayNumber(b); da != db {
			return da - db
		}
		return strings.Compare(a, b)
	})

	return names
}

// Latest returns the registered day with the highest number.
func (r Registry) Latest() (string, bool) {
	names := r.Names()
	if len(names) == 0 {
		return "", false
	}
	return names[len(names)-1], true
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name != "" && unicode.IsDigit(rune(name[0])) {
		name = "day" + name
	}
	if n := dayNumber(name); n >= 0 {
		return "day" + strconv.Itoa(n)
	}

	return name
}

// dayNumber extracts N from "dayN", or -1.
func dayNumber(name string) int {
	digits, ok := strings.CutPrefix(name, "day")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return -1
	}

	return n
}
