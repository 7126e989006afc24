package utilization

import (
	"sort"

	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/samber/lo"
)

const (
	TopRankSize    = 10
	BottomRankSize = 5
	// BottomRankPct admits members below it into the bottom ranking.
	BottomRankPct = 70.0
)

type Ranking struct {
	Top    []UserUtilization `json:"top"`
	Bottom []UserUtilization `json:"bottom"`
}

// Rank flattens all team members and picks the highest and lowest utilizers.
// A user on two teams appears once per team.
func Rank(teams []TeamUtilization) Ranking {
	all := lo.FlatMap(teams, func(t TeamUtilization, _ int) []UserUtilization {
		return t.Members
	})

	top := append([]UserUtilization(nil), all...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Utilization > top[j].Utilization
	})

	bottom := lo.Filter(all, func(m UserUtilization, _ int) bool {
		return m.Utilization < BottomRankPct || m.Status == domain.UtilizationMissingWork
	})
	sort.SliceStable(bottom, func(i, j int) bool {
		return bottom[i].Utilization < bottom[j].Utilization
	})

	return Ranking{
		Top:    head(top, TopRankSize),
		Bottom: head(bottom, BottomRankSize),
	}
}

func head(members []UserUtilization, n int) []UserUtilization {
	if len(members) > n {
		members = members[:n]
	}
	if members == nil {
		return []UserUtilization{}
	}
	return members
}
