package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rankFixture() *Scoreboard {
	return &Scoreboard{
		Teams:      map[string]Team{},
		Objectives: map[string]Objective{},
		PlayerScores: map[string]map[string]int32{
			"alice":   {"stone_mined": 98, "health": 20},
			"bob":     {"stone_mined": 5},
			"carol":   {"stone_mined": 150, "health": 20},
			"idler":   {"health": 20},
			"mallory": {"deaths": 7},
		},
		DisplaySlots: map[string]string{"sidebar": "stone_mined"},
	}
}

func TestRankByObjective_Descending(t *testing.T) {
	ranks := rankFixture().RankByObjective("stone_mined", false)
	assert.Equal(t, []PlayerRank{
		{Player: "carol", Score: 150},
		{Player: "alice", Score: 98},
		{Player: "bob", Score: 5},
	}, ranks)
}

func TestRankByObjective_Ascending(t *testing.T) {
	ranks := rankFixture().RankByObjective("stone_mined", true)
	assert.Equal(t, []PlayerRank{
		{Player: "bob", Score: 5},
		{Player: "alice", Score: 98},
		{Player: "carol", Score: 150},
	}, ranks)
}

func TestRankByObjective_TiesAreDeterministic(t *testing.T) {
	board := rankFixture()
	// Equal scores keep alphabetical order no matter how often we ask.
	want := []PlayerRank{
		{Player: "alice", Score: 20},
		{Player: "carol", Score: 20},
		{Player: "idler", Score: 20},
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, board.RankByObjective("health", false))
	}
}

func TestRankByObjective_ExcludesNonScorers(t *testing.T) {
	for _, rank := range rankFixture().RankByObjective("stone_mined", false) {
		assert.NotEqual(t, "idler", rank.Player)
		assert.NotEqual(t, "mallory", rank.Player)
	}
}

func TestRankByObjective_NoScorers(t *testing.T) {
	ranks := rankFixture().RankByObjective("does_not_exist", false)
	assert.Empty(t, ranks)
}
