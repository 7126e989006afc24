package progress

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/samber/lo"
)

type ProjectProgress struct {
	ProjectID      string                `json:"projectId"`
	Name           string                `json:"name"`
	Status         domain.ProjectStatus  `json:"status"`
	Progress       int                   `json:"progress"`
	ScheduleStatus domain.ScheduleStatus `json:"scheduleStatus"`
	PeriodBucket   domain.PeriodBucket   `json:"periodBucket"`
	PlanEndDate    *time.Time            `json:"planEndDate"`
	EndDate        *time.Time            `json:"endDate"`
	// RemainingDays counts from today to the effective end date; nil without one.
	RemainingDays *int `json:"remainingDays"`
	TaskTotal     int  `json:"taskTotal"`
	TaskCompleted int  `json:"taskCompleted"`
	TaskEligible  int  `json:"taskEligible"`
}

type TaskProgress struct {
	TaskID             string                `json:"taskId"`
	Name               string                `json:"name"`
	Progress           int                   `json:"progress"`
	Weight             float64               `json:"weight"`
	IsProgressEligible bool                  `json:"isProgressEligible"`
	PlanEndDate        *time.Time            `json:"planEndDate"`
	ScheduleStatus     domain.ScheduleStatus `json:"scheduleStatus"`
}

type Overview struct {
	Today           time.Time                     `json:"today"`
	Projects        []ProjectProgress             `json:"projects"`
	AverageProgress float64                       `json:"averageProgress"`
	Schedule        map[domain.ScheduleStatus]int `json:"schedule"`
	Periods         map[domain.PeriodBucket]int   `json:"periods"`
	Statuses        map[domain.ProjectStatus]int  `json:"statuses"`
}

// Summarize builds the per-project row shown in project lists.
func Summarize(p domain.Project, today time.Time) ProjectProgress {
	pp := ProjectProgress{
		ProjectID:      p.ID,
		Name:           p.Name,
		Status:         p.StatusName,
		Progress:       WeightedProgress(p.Tasks),
		ScheduleStatus: ScheduleStatus(p, today),
		PeriodBucket:   RemainingPeriodBucket(p, today),
		PlanEndDate:    p.PlanEndDate,
		EndDate:        p.EndDate,
		TaskTotal:      len(p.Tasks),
		TaskCompleted:  lo.CountBy(p.Tasks, func(t domain.ProjectTask) bool { return t.IsDone() }),
		TaskEligible:   lo.CountBy(p.Tasks, func(t domain.ProjectTask) bool { return t.IsProgressEligible }),
	}
	if end := p.EffectiveEndDate(); end != nil {
		days := calendar.DaysBetween(today, *end)
		pp.RemainingDays = &days
	}
	return pp
}

// SummarizeTasks lists a project's tasks with their deadline state, ordered
// by plan end date (undated last).
func SummarizeTasks(p domain.Project, today time.Time) []TaskProgress {
	out := make([]TaskProgress, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		out = append(out, TaskProgress{
			TaskID:             t.ID,
			Name:               t.Name,
			Progress:           t.Progress(),
			Weight:             taskWeight(t),
			IsProgressEligible: t.IsProgressEligible,
			PlanEndDate:        t.PlanEndDate,
			ScheduleStatus:     TaskScheduleStatus(t, today),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PlanEndDate, out[j].PlanEndDate
		if (a == nil) != (b == nil) {
			return a != nil
		}
		if a != nil && !a.Equal(*b) {
			return a.Before(*b)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ScheduleDistribution counts projects per applicable schedule status.
func ScheduleDistribution(projects []domain.Project, today time.Time) map[domain.ScheduleStatus]int {
	out := make(map[domain.ScheduleStatus]int)
	for _, p := range projects {
		if s := ScheduleStatus(p, today); s != domain.ScheduleNone {
			out[s]++
		}
	}
	return out
}

// PeriodDistribution counts open projects per remaining-period bucket.
// Completed projects and projects without any end date are left out.
func PeriodDistribution(projects []domain.Project, today time.Time) map[domain.PeriodBucket]int {
	out := make(map[domain.PeriodBucket]int)
	for _, p := range projects {
		if p.StatusName == domain.ProjectCompleted {
			continue
		}
		if b := RemainingPeriodBucket(p, today); b != domain.PeriodNone {
			out[b]++
		}
	}
	return out
}

// StatusCounts counts projects per status label.
func StatusCounts(projects []domain.Project) map[domain.ProjectStatus]int {
	return lo.CountValuesBy(projects, func(p domain.Project) domain.ProjectStatus {
		return p.StatusName
	})
}

// BuildOverview runs every project-level calculation for a dashboard view.
func BuildOverview(projects []domain.Project, today time.Time) Overview {
	today = calendar.Truncate(today)
	ov := Overview{
		Today:    today,
		Projects: make([]ProjectProgress, 0, len(projects)),
		Schedule: ScheduleDistribution(projects, today),
		Periods:  PeriodDistribution(projects, today),
		Statuses: StatusCounts(projects),
	}
	for _, p := range projects {
		ov.Projects = append(ov.Projects, Summarize(p, today))
	}
	if len(ov.Projects) > 0 {
		sum := lo.SumBy(ov.Projects, func(pp ProjectProgress) int { return pp.Progress })
		avg := float64(sum) / float64(len(ov.Projects))
		ov.AverageProgress = math.Floor(avg*10+0.5) / 10
	}
	return ov
}
