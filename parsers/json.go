package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/svioletg/scoreboard2json/filters"
	"github.com/svioletg/scoreboard2json/scoreboard"
)

// ParseJSON reads a dump previously written by Scoreboard.WriteJSON. All four
// top-level keys must be present. The player filter applies here just as it
// does for binary sources, so a full dump can be re-read with a narrower
// filter later.
func ParseJSON(r io.Reader, filter *filters.PlayerFilter) (*scoreboard.Scoreboard, error) {
	var doc struct {
		Teams        *map[string]scoreboard.Team      `json:"Teams"`
		Objectives   *map[string]scoreboard.Objective `json:"Objectives"`
		PlayerScores *map[string]map[string]int32     `json:"PlayerScores"`
		DisplaySlots *map[string]string               `json:"DisplaySlots"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON scoreboard: %w", err)
	}

	switch {
	case doc.Teams == nil:
		return nil, formatErrorf("scoreboard", "missing required key %q", "Teams")
	case doc.Objectives == nil:
		return nil, formatErrorf("scoreboard", "missing required key %q", "Objectives")
	case doc.PlayerScores == nil:
		return nil, formatErrorf("scoreboard", "missing required key %q", "PlayerScores")
	case doc.DisplaySlots == nil:
		return nil, formatErrorf("scoreboard", "missing required key %q", "DisplaySlots")
	}

	scores := make(map[string]map[string]int32, len(*doc.PlayerScores))
	for player, objectives := range *doc.PlayerScores {
		if !filter.Allows(player) {
			continue
		}
		scores[player] = objectives
	}

	return &scoreboard.Scoreboard{
		Teams:        *doc.Teams,
		Objectives:   *doc.Objectives,
		PlayerScores: scores,
		DisplaySlots: *doc.DisplaySlots,
	}, nil
}
