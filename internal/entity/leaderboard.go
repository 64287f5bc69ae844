package entity

import (
	"cmp"
	"slices"
)

const (
	HumanName   = "Player"
	PlayerXName = "Player X"
	PlayerOName = "Player O"
)

// Record is one leaderboard row.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

func (that Record) Total() int {
	return that.Wins - that.Losses
}

// Leaderboard maps an opponent name to its record.
type Leaderboard map[string]Record

// AIName - leaderboard row of the automated player on a tier, e.g. "AI (Hard)".
func AIName(tier Tier) string {
	return "AI (" + tier.Title() + ")"
}

func DefaultLeaderboard() Leaderboard {
	return Leaderboard{
		HumanName:          {},
		AIName(EasyTier):   {},
		AIName(MediumTier): {},
		AIName(HardTier):   {},
	}
}

// RecordDelta is an increment to apply to one leaderboard row.
type RecordDelta struct {
	Name string
	Record
}

// LeaderboardUpdate returns the rows a finished game changes. A continuing game changes nothing.
func LeaderboardUpdate(mode Mode, tier Tier, state TerminalState) []RecordDelta {
	if !state.IsTerminal() {
		return nil
	}

	xName, oName := PlayerXName, PlayerOName
	if mode.IsWithBot() {
		xName, oName = HumanName, AIName(tier)
	}

	switch {
	case state.Outcome == Draw:
		return []RecordDelta{
			{Name: xName, Record: Record{Ties: 1}},
			{Name: oName, Record: Record{Ties: 1}},
		}
	case state.Winner == MarkX:
		return []RecordDelta{
			{Name: xName, Record: Record{Wins: 1}},
			{Name: oName, Record: Record{Losses: 1}},
		}
	default:
		return []RecordDelta{
			{Name: xName, Record: Record{Losses: 1}},
			{Name: oName, Record: Record{Wins: 1}},
		}
	}
}

func (that Leaderboard) Apply(deltas []RecordDelta) {
	for _, delta := range deltas {
		row := that[delta.Name]
		row.Wins += delta.Wins
		row.Losses += delta.Losses
		row.Ties += delta.Ties
		that[delta.Name] = row
	}
}

type Standing struct {
	Rank int    `json:"rank"`
	Name string `json:"name"`
	Record
	Total int `json:"total"`
}

// Ranked orders rows by wins minus losses, best first; equal totals are ordered by name.
func (that Leaderboard) Ranked() []Standing {
	standings := make([]Standing, 0, len(that))
	for name, record := range that {
		standings = append(standings, Standing{Name: name, Record: record, Total: record.Total()})
	}

	slices.SortFunc(standings, func(a, b Standing) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings
}
