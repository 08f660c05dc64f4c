// Package client consumes the Slingshot API from outside the server: a REST
// client, a local snapshot cache, and the merge logic that reconciles the
// durable and realtime channels into one view.
package client

import (
	"sort"
	"time"

	"slingshot/domain"
	"slingshot/domain/event"
)

// Entry is one reconciled chat turn. Durable messages keep their store id;
// entries that only exist as broadcast events carry none.
type Entry struct {
	ID      *int64
	Content string
	Role    domain.Role
	At      time.Time
}

// Reconcile merges three sources: the initially-supplied snapshot, the
// gateway's list result, and the broadcast events received since connecting.
// Duplicates are collapsed on the composite key (content, role) — later
// sources win — and the result is sorted by timestamp ascending.
//
// The key is lossy: two legitimately distinct messages with identical content
// and role collapse into one entry. The broadcast payload carries no shared
// identity with the stored row, so nothing stronger is available.
//
// The merge is a full recompute each time, not incremental; fine for chat
// sized histories.
func Reconcile(snapshot, fetched []domain.Message, events []event.ChatEvent) []Entry {
	type keyed struct {
		key   string
		entry Entry
	}

	var combined []keyed
	for _, m := range snapshot {
		combined = append(combined, keyed{dedupKey(m.Content, m.Role), fromMessage(m)})
	}
	for _, m := range fetched {
		combined = append(combined, keyed{dedupKey(m.Content, m.Role), fromMessage(m)})
	}
	for _, e := range events {
		combined = append(combined, keyed{dedupKey(e.Content, e.Role), Entry{
			Content: e.Content,
			Role:    e.Role,
			At:      e.Timestamp,
		}})
	}

	seen := make(map[string]int, len(combined))
	var out []Entry
	for _, k := range combined {
		if i, ok := seen[k.key]; ok {
			out[i] = k.entry
			continue
		}
		seen[k.key] = len(out)
		out = append(out, k.entry)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}

func fromMessage(m domain.Message) Entry {
	id := m.ID
	return Entry{
		ID:      &id,
		Content: m.Content,
		Role:    m.Role,
		At:      m.CreatedAt,
	}
}

func dedupKey(content string, role domain.Role) string {
	return content + "\x00" + string(role)
}
