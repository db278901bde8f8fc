package viewstate

// Group is one cluster of records sharing a key.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy partitions records in a single left-to-right pass. Groups appear in
// the order their key is first seen and records keep their source order
// within a group. It is a stable partition, not a sort.
func GroupBy[T any, K comparable](records []T, key func(T) K) []Group[K, T] {
	if len(records) == 0 {
		return nil
	}
	var groups []Group[K, T]
	index := make(map[K]int)
	for _, rec := range records {
		k := key(rec)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, rec)
	}
	return groups
}

// Flatten concatenates the groups' records in group order.
func Flatten[K comparable, T any](groups []Group[K, T]) []T {
	var out []T
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// Keys returns the group keys in order.
func Keys[K comparable, T any](groups []Group[K, T]) []K {
	keys := make([]K, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	return keys
}

// Filter returns the records keep accepts, in source order.
func Filter[T any](records []T, keep func(T) bool) []T {
	var out []T
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
