package economy

import (
	"sort"

	"CampusHub/internal/model"
)

// RankTiers maps lifetime earnings to a rank label, highest threshold first.
var RankTiers = []struct {
	MinBones int
	Label    string
}{
	{5000, "LEGEND"},
	{2000, "VANGUARD"},
	{800, "OPERATIVE"},
	{250, "RUNNER"},
	{0, "SCOUT"},
}

// RankFor returns the rank label for a lifetime bone total.
func RankFor(lifetime int) string {
	for _, t := range RankTiers {
		if lifetime >= t.MinBones {
			return t.Label
		}
	}
	return RankTiers[len(RankTiers)-1].Label
}

// Standing is one row of the computed leaderboard.
type Standing struct {
	Position int
	UserID   string
	Name     string
	Bones    int
	Rank     string
	IsSelf   bool
}

// Standings merges the local user into the seeded board and orders it by bones.
func Standings(s model.State) []Standing {
	rows := make([]Standing, 0, len(s.Leaderboard)+1)
	for _, e := range s.Leaderboard {
		if e.UserID == s.User.ID {
			continue
		}
		rows = append(rows, Standing{UserID: e.UserID, Name: e.Name, Bones: e.Bones})
	}
	rows = append(rows, Standing{UserID: s.User.ID, Name: s.User.Name, Bones: s.User.LifetimeEarned, IsSelf: true})

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Bones != rows[j].Bones {
			return rows[i].Bones > rows[j].Bones
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Position = i + 1
		rows[i].Rank = RankFor(rows[i].Bones)
	}
	return rows
}
