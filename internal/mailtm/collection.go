package mailtm

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"sort"

	"github.com/cevapi/mailtm/internal/hydra"
)

// MessagePage is one page of a message listing.
type MessagePage struct {
	Items []MessageSummary
	Total int
}

// DomainPage is one page of the domain listing.
type DomainPage struct {
	Items []Domain
	Total int
}

// DecodeMessages converts a normalized collection into message
// summaries. Members that are not JSON objects are skipped; mistyped
// fields inside an object keep whatever decoded cleanly. It never
// fails.
func DecodeMessages(coll hydra.Collection) MessagePage {
	items := make([]MessageSummary, 0, len(coll.Members))
	for _, raw := range coll.Members {
		if !isObject(raw) {
			continue
		}
		var msg MessageSummary
		_ = json.Unmarshal(raw, &msg)
		items = append(items, msg)
	}
	return MessagePage{Items: items, Total: coll.TotalItems}
}

// DecodeDomains converts a normalized collection into domain entries,
// with the same tolerance as DecodeMessages.
func DecodeDomains(coll hydra.Collection) DomainPage {
	items := make([]Domain, 0, len(coll.Members))
	for _, raw := range coll.Members {
		if !isObject(raw) {
			continue
		}
		var d Domain
		_ = json.Unmarshal(raw, &d)
		items = append(items, d)
	}
	return DomainPage{Items: items, Total: coll.TotalItems}
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// SortMessagesDesc returns the summaries ordered newest first. The
// sort is stable and compares createdAt lexicographically, which is
// correct for the API's ISO-8601 timestamps; items without a timestamp
// sort to the end. The input slice is left untouched.
func SortMessagesDesc(items []MessageSummary) []MessageSummary {
	out := make([]MessageSummary, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

const localPartAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomLocalPart returns a random mailbox name of n lowercase
// alphanumeric characters, for throwaway account creation.
func RandomLocalPart(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = localPartAlphabet[rand.Intn(len(localPartAlphabet))]
	}
	return string(b)
}
