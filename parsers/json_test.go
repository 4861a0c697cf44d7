package parsers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svioletg/scoreboard2json/filters"
)

func TestParseJSON_RoundTrip(t *testing.T) {
	data := sampleData()
	data.Teams = []datTeam{{
		Name:        "red",
		TeamColor:   "red",
		Players:     []string{"svioletg"},
		DisplayName: `{"text":"Red Team"}`,
	}}

	original, err := ParseNBT(bytes.NewReader(marshalScoreboard(t, data)), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, original.WriteJSON(&buf))

	reparsed, err := ParseJSON(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, original, reparsed)
}

func TestParseJSON_MissingTopLevelKey(t *testing.T) {
	doc := `{"Teams": {}, "Objectives": {}, "PlayerScores": {}}`

	_, err := ParseJSON(strings.NewReader(doc), nil)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Msg, "DisplaySlots")
}

func TestParseJSON_NotJSON(t *testing.T) {
	_, err := ParseJSON(strings.NewReader("not json at all"), nil)
	assert.Error(t, err)
}

func TestParseJSON_FilterApplies(t *testing.T) {
	doc := `{
		"Teams": {},
		"Objectives": {},
		"DisplaySlots": {},
		"PlayerScores": {
			"svioletg": {"health": 20},
			"dummy_storage": {"health": 1}
		}
	}`

	filter, err := filters.New(nil, []string{"dummy_storage"}, true)
	require.NoError(t, err)

	board, err := ParseJSON(strings.NewReader(doc), filter)
	require.NoError(t, err)
	assert.Contains(t, board.PlayerScores, "svioletg")
	assert.NotContains(t, board.PlayerScores, "dummy_storage")
}

func TestParseFile_DispatchesOnSuffix(t *testing.T) {
	_, err := ParseFile("scoreboard.txt", nil)
	assert.ErrorContains(t, err, "expected a .dat or .json suffix")
}
