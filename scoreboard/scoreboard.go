package scoreboard

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Scoreboard is the normalized form of a server's scoreboard data: every
// collection is keyed by its natural identifier (team name, objective name,
// player name) instead of being an ordered tag list. A Scoreboard is built
// once by the parsers package and never mutated afterwards.
type Scoreboard struct {
	Teams        map[string]Team             `json:"Teams" yaml:"Teams"`
	Objectives   map[string]Objective        `json:"Objectives" yaml:"Objectives"`
	PlayerScores map[string]map[string]int32 `json:"PlayerScores" yaml:"PlayerScores"`
	DisplaySlots map[string]string           `json:"DisplaySlots" yaml:"DisplaySlots"`
}

// Team mirrors one entry of the Teams tag list. The team name is the key in
// Scoreboard.Teams rather than a field here.
type Team struct {
	DeathMessageVisibility string      `json:"DeathMessageVisibility" yaml:"DeathMessageVisibility"`
	TeamColor              string      `json:"TeamColor" yaml:"TeamColor"`
	SeeFriendlyInvisibles  bool        `json:"SeeFriendlyInvisibles" yaml:"SeeFriendlyInvisibles"`
	CollisionRule          string      `json:"CollisionRule" yaml:"CollisionRule"`
	AllowFriendlyFire      bool        `json:"AllowFriendlyFire" yaml:"AllowFriendlyFire"`
	MemberNamePrefix       string      `json:"MemberNamePrefix" yaml:"MemberNamePrefix"`
	MemberNameSuffix       string      `json:"MemberNameSuffix" yaml:"MemberNameSuffix"`
	NameTagVisibility      string      `json:"NameTagVisibility" yaml:"NameTagVisibility"`
	Players                []string    `json:"Players" yaml:"Players"`
	DisplayName            DisplayName `json:"DisplayName" yaml:"DisplayName"`
}

type Objective struct {
	CriteriaName string      `json:"CriteriaName" yaml:"CriteriaName"`
	RenderType   string      `json:"RenderType" yaml:"RenderType"`
	DisplayName  DisplayName `json:"DisplayName" yaml:"DisplayName"`
}

// DisplayName keeps both views of a text-component string. Raw is the source
// of truth; Parsed is a best-effort flat key/value scan of it and is nil when
// the scan finds nothing usable.
type DisplayName struct {
	Parsed map[string]string `json:"json_dict" yaml:"json_dict"`
	Raw    string            `json:"json_string" yaml:"json_string"`
}

// WriteJSON dumps the scoreboard in the layout ParseJSON accepts, so a dump
// can later be re-read without the original .dat file.
func (s *Scoreboard) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML dumps the scoreboard as YAML. This format is output-only; only
// JSON dumps can be parsed back.
func (s *Scoreboard) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
