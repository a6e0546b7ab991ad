package commands

import (
	"strings"

	"tableflip.dev/tracker/pkg/store"
)

// resolveID expands a short id prefix (as printed by --show-id) to the full
// entry id when exactly one entry matches. Ambiguous or unknown prefixes pass
// through unchanged and fail downstream as not-found.
func resolveID(s *store.Store, id string) string {
	if s.GetEntry(id) != nil {
		return id
	}

	match := ""
	for _, e := range s.GetEntries(store.Filter{Status: store.StatusAll}) {
		if strings.HasPrefix(e.ID, id) {
			if match != "" {
				return id
			}
			match = e.ID
		}
	}
	if match != "" {
		return match
	}
	return id
}

func resolveIDs(s *store.Store, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, resolveID(s, id))
	}
	return out
}
