package scoreboard

import "slices"

// PlayerRank is one row of a ranking: a player and their score for the
// queried objective.
type PlayerRank struct {
	Player string `json:"player" yaml:"player"`
	Score  int32  `json:"score" yaml:"score"`
}

// RankByObjective returns every player holding a score for the given
// objective, ordered by score, highest first unless ascending is set.
// Players without a score for the objective are left out entirely rather
// than ranked at zero, and an objective nobody scored yields an empty slice.
// Ties keep a deterministic order: players are collected alphabetically and
// the sort is stable.
func (s *Scoreboard) RankByObjective(objective string, ascending bool) []PlayerRank {
	players := make([]string, 0, len(s.PlayerScores))
	for player := range s.PlayerScores {
		players = append(players, player)
	}
	slices.Sort(players)

	ranks := make([]PlayerRank, 0, len(players))
	for _, player := range players {
		if score, ok := s.PlayerScores[player][objective]; ok {
			ranks = append(ranks, PlayerRank{Player: player, Score: score})
		}
	}

	slices.SortStableFunc(ranks, func(a, b PlayerRank) int {
		if ascending {
			return int(a.Score) - int(b.Score)
		}
		return int(b.Score) - int(a.Score)
	})
	return ranks
}
