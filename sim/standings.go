// Season standings derived from the team aggregates, printed after a
// simulate run.

package sim

import (
	"fmt"
	"sort"
)

// Standings returns teams ordered by cumulative season points, best first.
// Track accumulates high scores; within equal points the stronger overall
// rating ranks first.
func Standings(teams []*Team) []*Team {
	out := make([]*Team, len(teams))
	copy(out, teams)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Ovr > out[j].Ovr
	})
	return out
}

// PrintStandings displays the season table.
func PrintStandings(game *Game, teams []*Team) {
	fmt.Println("=== Season Standings ===")
	fmt.Printf("Year %d, Week %d (%s)\n", game.CurrentYear, game.CurrentWeek, game.Phase)
	for i, team := range Standings(teams) {
		marker := " "
		if team.ID == game.SelectedTeamID {
			marker = "*"
		}
		fmt.Printf("%2d. %s %-28s %4d pts  ovr %d (spr %d / mid %d / lng %d / xc %d)\n",
			i+1, marker, team.School, team.Points, team.Ovr,
			team.SprintOvr, team.MiddleOvr, team.LongOvr, team.CrossCountryOvr)
	}
}
