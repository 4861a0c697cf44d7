package scoreboard

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func dumpFixture() *Scoreboard {
	return &Scoreboard{
		Teams: map[string]Team{
			"red": {
				TeamColor:   "red",
				Players:     []string{"svioletg"},
				DisplayName: DisplayName{Raw: `{"text":"Red Team"}`, Parsed: map[string]string{"text": "Red Team"}},
			},
		},
		Objectives: map[string]Objective{
			"health": {
				CriteriaName: "health",
				RenderType:   "hearts",
				DisplayName:  DisplayName{Raw: `{"text":"Health"}`, Parsed: map[string]string{"text": "Health"}},
			},
		},
		PlayerScores: map[string]map[string]int32{"svioletg": {"health": 20}},
		DisplaySlots: map[string]string{"sidebar": "health"},
	}
}

func TestWriteJSON_Schema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpFixture().WriteJSON(&buf))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc, 4)
	for _, key := range []string{"Teams", "Objectives", "PlayerScores", "DisplaySlots"} {
		assert.Contains(t, doc, key)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpFixture().WriteYAML(&buf))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, doc, "PlayerScores")
	assert.Contains(t, buf.String(), "json_string")
}
