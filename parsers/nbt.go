package parsers

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
	log "github.com/sirupsen/logrus"

	"github.com/svioletg/scoreboard2json/filters"
	"github.com/svioletg/scoreboard2json/scoreboard"
)

var gzipMagic = []byte{0x1f, 0x8b}

// ParseNBT reads a scoreboard.dat stream and flattens it into a Scoreboard.
// The stream may be gzipped (servers write it that way) or a bare NBT tree;
// the magic bytes decide. The filter, if any, applies to player scores only,
// never to team member lists: filtering is about score visibility, and team
// rosters legitimately carry names a whitelist knows nothing about.
func ParseNBT(r io.Reader, filter *filters.PlayerFilter) (*scoreboard.Scoreboard, error) {
	buf := bufio.NewReader(r)
	magic, err := buf.Peek(len(gzipMagic))
	if err != nil {
		return nil, fmt.Errorf("reading scoreboard data: %w", err)
	}

	var src io.Reader = buf
	if bytes.Equal(magic, gzipMagic) {
		gz, err := gzip.NewReader(buf)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	var root map[string]any
	if _, err := nbt.NewDecoder(src).Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding NBT: %w", err)
	}

	data, err := compoundAt(root, "data", "scoreboard")
	if err != nil {
		return nil, err
	}

	teams, err := parseTeams(data)
	if err != nil {
		return nil, err
	}
	objectives, err := parseObjectives(data)
	if err != nil {
		return nil, err
	}
	displaySlots, err := parseDisplaySlots(data)
	if err != nil {
		return nil, err
	}
	playerScores, err := parsePlayerScores(data, filter)
	if err != nil {
		return nil, err
	}

	return &scoreboard.Scoreboard{
		Teams:        teams,
		Objectives:   objectives,
		PlayerScores: playerScores,
		DisplaySlots: displaySlots,
	}, nil
}

func parseTeams(data map[string]any) (map[string]scoreboard.Team, error) {
	entries, err := listAt(data, "Teams", "data")
	if err != nil {
		return nil, err
	}

	teams := make(map[string]scoreboard.Team, len(entries))
	for i, v := range entries {
		path := fmt.Sprintf("data.Teams[%d]", i)
		c, ok := v.(map[string]any)
		if !ok {
			return nil, formatErrorf(path, "team entry is not a compound (got %T)", v)
		}
		r := &compoundReader{c: c, path: path}
		name := r.str("Name")
		team := scoreboard.Team{
			DeathMessageVisibility: r.str("DeathMessageVisibility"),
			TeamColor:              r.str("TeamColor"),
			SeeFriendlyInvisibles:  r.boolean("SeeFriendlyInvisibles"),
			CollisionRule:          r.str("CollisionRule"),
			AllowFriendlyFire:      r.boolean("AllowFriendlyFire"),
			MemberNamePrefix:       r.str("MemberNamePrefix"),
			MemberNameSuffix:       r.str("MemberNameSuffix"),
			NameTagVisibility:      r.str("NameTagVisibility"),
			Players:                r.stringList("Players"),
			DisplayName:            parseDisplayName(r.str("DisplayName")),
		}
		if r.err != nil {
			return nil, r.err
		}
		teams[name] = team
	}
	return teams, nil
}

func parseObjectives(data map[string]any) (map[string]scoreboard.Objective, error) {
	entries, err := listAt(data, "Objectives", "data")
	if err != nil {
		return nil, err
	}

	objectives := make(map[string]scoreboard.Objective, len(entries))
	for i, v := range entries {
		path := fmt.Sprintf("data.Objectives[%d]", i)
		c, ok := v.(map[string]any)
		if !ok {
			return nil, formatErrorf(path, "objective entry is not a compound (got %T)", v)
		}
		r := &compoundReader{c: c, path: path}
		name := r.str("Name")
		obj := scoreboard.Objective{
			CriteriaName: r.str("CriteriaName"),
			RenderType:   r.str("RenderType"),
			DisplayName:  parseDisplayName(r.str("DisplayName")),
		}
		if r.err != nil {
			return nil, r.err
		}
		objectives[name] = obj
	}
	return objectives, nil
}

func parseDisplaySlots(data map[string]any) (map[string]string, error) {
	c, err := compoundAt(data, "DisplaySlots", "data")
	if err != nil {
		return nil, err
	}

	slots := make(map[string]string, len(c))
	for slot, v := range c {
		name, ok := v.(string)
		if !ok {
			return nil, formatErrorf("data.DisplaySlots", "slot %q is not a string (got %T)", slot, v)
		}
		slots[slot] = name
	}
	return slots, nil
}

func parsePlayerScores(data map[string]any, filter *filters.PlayerFilter) (map[string]map[string]int32, error) {
	entries, err := listAt(data, "PlayerScores", "data")
	if err != nil {
		return nil, err
	}

	scores := make(map[string]map[string]int32)
	for i, v := range entries {
		path := fmt.Sprintf("data.PlayerScores[%d]", i)
		c, ok := v.(map[string]any)
		if !ok {
			return nil, formatErrorf(path, "score entry is not a compound (got %T)", v)
		}
		r := &compoundReader{c: c, path: path}
		player := r.str("Name")
		objective := r.str("Objective")
		score := r.integer("Score")
		if r.err != nil {
			return nil, r.err
		}

		if !filter.Allows(player) {
			log.Debugf("dropping score entry for filtered player %q", player)
			continue
		}
		if scores[player] == nil {
			scores[player] = make(map[string]int32)
		}
		// Last write wins for duplicate (player, objective) pairs.
		scores[player][objective] = score
	}
	return scores, nil
}
