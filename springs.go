package gridsearch

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSpringRow parses a condition record such as "???.### 1,1,3".
func ParseSpringRow(line string) (pattern string, groups []int, err error) {
	pattern, list, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return "", nil, fmt.Errorf("%w: no group list in %q", ErrMalformedInput, line)
	}
	for _, f := range strings.Split(list, ",") {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return "", nil, fmt.Errorf("%w: bad group %q in %q", ErrMalformedInput, f, line)
		}
		groups = append(groups, n)
	}
	return pattern, groups, nil
}

// UnfoldSpringRow repeats a record n times, joining the patterns with '?'.
func UnfoldSpringRow(pattern string, groups []int, n int) (string, []int) {
	ps := make([]string, n)
	var gs []int
	for i := range ps {
		ps[i] = pattern
		gs = append(gs, groups...)
	}
	return strings.Join(ps, "?"), gs
}

type springKey struct {
	pos, group, run int
}

// CountArrangements counts the ways to replace every '?' in pattern with
// '.' or '#' so that the runs of '#' have exactly the lengths in groups.
// Sub-results are memoised on (position, group index, current run).
func CountArrangements(pattern string, groups []int) (uint64, error) {
	for i, c := range pattern {
		if c != '.' && c != '#' && c != '?' {
			return 0, fmt.Errorf("%w: %q at %d", ErrInvalidCell, c, i)
		}
	}
	memo := make(map[springKey]uint64)
	var count func(k springKey) uint64
	count = func(k springKey) uint64 {
		if k.pos == len(pattern) {
			if k.group == len(groups) && k.run == 0 ||
				k.group == len(groups)-1 && k.run == groups[k.group] {
				return 1
			}
			return 0
		}
		if v, ok := memo[k]; ok {
			return v
		}
		var n uint64
		c := pattern[k.pos]
		if c != '.' && k.group < len(groups) && k.run < groups[k.group] {
			n += count(springKey{k.pos + 1, k.group, k.run + 1})
		}
		if c != '#' {
			switch {
			case k.run == 0:
				n += count(springKey{k.pos + 1, k.group, 0})
			case k.run == groups[k.group]:
				n += count(springKey{k.pos + 1, k.group + 1, 0})
			}
		}
		memo[k] = n
		return n
	}
	return count(springKey{}), nil
}
