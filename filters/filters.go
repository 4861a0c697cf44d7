package filters

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// OfflineUUIDPrefix marks allowlist entries created for offline "dummy"
// players. Datapacks use such accounts to store data, so whitelists built
// from a server allowlist skip them.
const OfflineUUIDPrefix = "00000000-0000-0000-"

// ErrConflictingLists is returned when a filter is constructed with both a
// whitelist and a blacklist. One would have to take priority over the other
// and there is no sensible answer, so it is rejected outright.
var ErrConflictingLists = errors.New("cannot use a whitelist and a blacklist at the same time")

// PlayerEntry is one record of the standard server allowlist format
// (whitelist.json and friends).
type PlayerEntry struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// PlayerFilter decides which players' scores make it into a parsed
// scoreboard. A nil filter allows everyone.
type PlayerFilter struct {
	whitelist       map[string]struct{}
	blacklist       map[string]struct{}
	includeDotNames bool
}

// New builds a filter from at most one of a whitelist or a blacklist of
// player names. includeDotNames lets names starting with a dot through a
// whitelist they are not on: players bridged in from other platforms show up
// under a dot-prefixed name that never matches an allowlist sourced from
// account UUIDs.
func New(whitelist, blacklist []string, includeDotNames bool) (*PlayerFilter, error) {
	if len(whitelist) > 0 && len(blacklist) > 0 {
		return nil, ErrConflictingLists
	}

	f := &PlayerFilter{includeDotNames: includeDotNames}
	if len(whitelist) > 0 {
		f.whitelist = make(map[string]struct{}, len(whitelist))
		for _, name := range whitelist {
			f.whitelist[name] = struct{}{}
		}
	}
	if len(blacklist) > 0 {
		f.blacklist = make(map[string]struct{}, len(blacklist))
		for _, name := range blacklist {
			f.blacklist[name] = struct{}{}
		}
	}
	return f, nil
}

// Allows reports whether score entries for the named player should be kept.
// The dot-name bypass only applies against a whitelist miss; a blacklisted
// dot name stays excluded.
func (f *PlayerFilter) Allows(name string) bool {
	if f == nil {
		return true
	}
	if f.blacklist != nil {
		_, listed := f.blacklist[name]
		return !listed
	}
	if f.whitelist != nil {
		if _, listed := f.whitelist[name]; listed {
			return true
		}
		return f.includeDotNames && strings.HasPrefix(name, ".")
	}
	return true
}

// LoadWhitelist reads an allowlist-format JSON file and returns the player
// names usable as a whitelist. Offline entries are dropped: they do not
// correspond to real accounts, and the players behind them appear in
// scoreboard data under dot-prefixed names anyway.
func LoadWhitelist(path string) ([]string, error) {
	entries, err := loadEntries(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.UUID, OfflineUUIDPrefix) {
			log.Debugf("skipping offline whitelist entry %q", entry.Name)
			continue
		}
		if _, err := uuid.Parse(entry.UUID); err != nil {
			log.Warnf("whitelist entry %q has a malformed uuid %q", entry.Name, entry.UUID)
		}
		names = append(names, entry.Name)
	}
	return names, nil
}

// LoadBlacklist reads an allowlist-format JSON file and returns every player
// name in it. Unlike LoadWhitelist, offline entries are kept: blocking a
// dummy player is a perfectly reasonable thing to want.
func LoadBlacklist(path string) ([]string, error) {
	entries, err := loadEntries(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names, nil
}

func loadEntries(path string) ([]PlayerEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading player list: %w", err)
	}

	var entries []PlayerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing player list %q: %w", path, err)
	}
	return entries, nil
}
