package collections

import "github.com/goliatone/go-support/supporterrors"

// GroupOption configures InGroupsOf and InGroups.
type GroupOption[T any] func(*groupConfig[T])

type groupConfig[T any] struct {
	fill   T
	padded bool
}

// WithFill pads short groups with v so every group has the same length.
func WithFill[T any](v T) GroupOption[T] {
	return func(c *groupConfig[T]) {
		c.fill = v
		c.padded = true
	}
}

func newGroupConfig[T any](opts []GroupOption[T]) groupConfig[T] {
	var cfg groupConfig[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// InGroupsOf splits items into consecutive groups of size elements. The last
// group is shorter unless WithFill is given.
func InGroupsOf[T any](items []T, size int, opts ...GroupOption[T]) ([][]T, error) {
	if size <= 0 {
		return nil, supporterrors.InvalidArgument("collections.InGroupsOf", "size", size, "must be positive")
	}
	cfg := newGroupConfig(opts)

	groups := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		group := make([]T, end-start, size)
		copy(group, items[start:end])
		if cfg.padded {
			for len(group) < size {
				group = append(group, cfg.fill)
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// InGroups splits items into count groups whose lengths differ by at most
// one, the longer groups first. Short groups are padded when WithFill is
// given.
func InGroups[T any](items []T, count int, opts ...GroupOption[T]) ([][]T, error) {
	if count <= 0 {
		return nil, supporterrors.InvalidArgument("collections.InGroups", "count", count, "must be positive")
	}
	cfg := newGroupConfig(opts)

	base, extra := len(items)/count, len(items)%count
	longest := base
	if extra > 0 {
		longest++
	}

	groups := make([][]T, 0, count)
	start := 0
	for i := 0; i < count; i++ {
		size := base
		if i < extra {
			size++
		}
		group := make([]T, size, longest)
		copy(group, items[start:start+size])
		start += size
		if cfg.padded && size < longest {
			group = append(group, cfg.fill)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Split divides items at each element equal to sep. Adjacent separators
// produce empty groups.
func Split[T comparable](items []T, sep T) [][]T {
	return SplitFunc(items, func(v T) bool { return v == sep })
}

// SplitFunc divides items at each element for which isSep returns true.
func SplitFunc[T any](items []T, isSep func(T) bool) [][]T {
	groups := [][]T{{}}
	for _, item := range items {
		if isSep(item) {
			groups = append(groups, []T{})
			continue
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], item)
	}
	return groups
}
