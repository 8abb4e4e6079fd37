package items

import (
	"sort"
	"strings"
)

// Merge unions name streams and returns them sorted ignoring case, with
// entries that differ only in case collapsed to the first in order. Ties
// are broken by byte order so the result is a total order.
func Merge(streams ...[]string) []string {
	var all []string
	for _, stream := range streams {
		for _, name := range stream {
			if name != "" {
				all = append(all, name)
			}
		}
	}

	sort.Slice(all, func(i, j int) bool {
		fi, fj := strings.ToUpper(all[i]), strings.ToUpper(all[j])
		if fi != fj {
			return fi < fj
		}
		return all[i] < all[j]
	})

	out := make([]string, 0, len(all))
	for _, name := range all {
		if len(out) > 0 && strings.EqualFold(out[len(out)-1], name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
