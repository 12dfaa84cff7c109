// Package roster controls who can log in. The trip has a fixed guest list
// keyed by phone number; anyone not on it is turned away at login.
//
// The list is injected through the Provider interface instead of being
// compiled into the binary, so adding a player is a config change and a
// restart, not a rebuild. The server loads it from a JSON file at startup.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry is one person on the guest list. ID is a stable roster identifier
// (it survives across database resets and links a player row back to the
// list). Admin marks who can run results and edit handicaps.
type Entry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Admin bool   `json:"admin,omitempty"`
}

// Provider answers whether a phone number belongs to the trip.
type Provider interface {
	// Lookup finds the entry for a phone number. The number is normalized
	// before matching, so "856-381-2930" and "+18563812930" hit the same entry.
	Lookup(phone string) (Entry, bool)
	// All returns every entry, in list order.
	All() []Entry
}

// StaticProvider serves a roster held in memory. It is the only Provider
// implementation today; the interface exists so handlers never know where
// the list came from.
type StaticProvider struct {
	entries []Entry
	byPhone map[string]Entry
}

// NewStaticProvider builds a provider from a list of entries. Entries with
// an empty phone or a phone that normalizes to a duplicate are rejected so a
// typo in the roster file fails at startup, not at login time.
func NewStaticProvider(entries []Entry) (*StaticProvider, error) {
	p := &StaticProvider{
		entries: make([]Entry, 0, len(entries)),
		byPhone: make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		phone := NormalizePhone(e.Phone)
		if phone == "" {
			return nil, fmt.Errorf("roster entry %q has no phone number", e.Name)
		}
		if _, dup := p.byPhone[phone]; dup {
			return nil, fmt.Errorf("roster phone %s appears more than once", phone)
		}
		e.Phone = phone
		p.byPhone[phone] = e
		p.entries = append(p.entries, e)
	}
	return p, nil
}

// LoadFile reads a roster from a JSON file holding an array of entries.
func LoadFile(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("roster file %s is empty", path)
	}
	return NewStaticProvider(entries)
}

// Lookup implements Provider.
func (p *StaticProvider) Lookup(phone string) (Entry, bool) {
	entry, ok := p.byPhone[NormalizePhone(phone)]
	return entry, ok
}

// All implements Provider.
func (p *StaticProvider) All() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// NormalizePhone reduces a phone number to +1XXXXXXXXXX form: formatting
// characters are stripped and a bare 10-digit US number gets the +1 country
// code. Anything already carrying a + keeps it.
func NormalizePhone(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	if strings.HasPrefix(cleaned, "1") && len(cleaned) == 11 {
		return "+" + cleaned
	}
	return "+1" + cleaned
}
