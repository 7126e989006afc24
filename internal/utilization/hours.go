package utilization

import (
	"sort"

	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/samber/lo"
)

// EntityTrendThreshold is the relative change, in percent, beyond which an
// entity's hours count as up or down.
const EntityTrendThreshold = 10.0

type HoursComparison struct {
	EntityID      string       `json:"entityId"`
	Name          string       `json:"name"`
	CurrentHours  float64      `json:"currentHours"`
	PreviousHours float64      `json:"previousHours"`
	ChangeRate    float64      `json:"changeRate"`
	Trend         domain.Trend `json:"trend"`
}

// CompareEntity computes the relative change between two periods' hours.
// From zero, any growth reads as 100% and trend "new"; dropping to zero is "end".
func CompareEntity(current, previous float64) (float64, domain.Trend) {
	var rate float64
	if previous == 0 {
		if current > 0 {
			rate = 100
		}
	} else {
		rate = roundHalfUp((current-previous)/previous*1000) / 10
	}

	switch {
	case previous == 0 && current > 0:
		return rate, domain.TrendNew
	case previous > 0 && current == 0:
		return rate, domain.TrendEnd
	case rate > EntityTrendThreshold:
		return rate, domain.TrendUp
	case rate < -EntityTrendThreshold:
		return rate, domain.TrendDown
	default:
		return rate, domain.TrendStable
	}
}

// ProjectHours sums entry hours per project, mapping entries through their task.
// Deleted entries and entries on unknown tasks are skipped.
func ProjectHours(entries []domain.WorkLogEntry, taskProject map[string]string) map[string]float64 {
	out := make(map[string]float64)
	for _, e := range entries {
		if e.IsDeleted {
			continue
		}
		projectID, ok := taskProject[e.TaskID]
		if !ok || projectID == "" {
			continue
		}
		out[projectID] += e.TotalHours()
	}
	return out
}

// TeamHours sums entry hours per resolved team: the entry's own team, else the
// user's current team. Entries resolving to no team are skipped.
func TeamHours(entries []domain.WorkLogEntry, users []domain.User) map[string]float64 {
	byID := lo.KeyBy(users, func(u domain.User) string { return u.ID })
	out := make(map[string]float64)
	for _, e := range entries {
		if e.IsDeleted {
			continue
		}
		if teamID := e.ResolveTeam(byID); teamID != "" {
			out[teamID] += e.TotalHours()
		}
	}
	return out
}

// CompareHours pairs two periods' per-entity hours. Entities present in either
// period appear once; results are ordered by current hours, then previous
// hours, then name.
func CompareHours(current, previous map[string]float64, names map[string]string) []HoursComparison {
	ids := lo.Uniq(append(lo.Keys(current), lo.Keys(previous)...))

	out := make([]HoursComparison, 0, len(ids))
	for _, id := range ids {
		cur, prev := current[id], previous[id]
		rate, trend := CompareEntity(cur, prev)
		out = append(out, HoursComparison{
			EntityID:      id,
			Name:          domain.CoalesceStr(names[id], id),
			CurrentHours:  cur,
			PreviousHours: prev,
			ChangeRate:    rate,
			Trend:         trend,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CurrentHours != out[j].CurrentHours {
			return out[i].CurrentHours > out[j].CurrentHours
		}
		if out[i].PreviousHours != out[j].PreviousHours {
			return out[i].PreviousHours > out[j].PreviousHours
		}
		return out[i].Name < out[j].Name
	})
	return out
}
