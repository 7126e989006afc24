package app

import (
	"time"

	"github.com/alexanderramin/teamload/internal/utilization"
)

type UtilizationRequest struct {
	Range DateRange
	// TeamID limits the report to one team when set.
	TeamID           string
	IncludeUntracked bool
}

type UtilizationResponse = utilization.Report

type WeeklyResponse = utilization.WeeklyReport

type RankingResponse struct {
	RangeStart time.Time           `json:"rangeStart"`
	RangeEnd   time.Time           `json:"rangeEnd"`
	Ranking    utilization.Ranking `json:"ranking"`
}

type HoursGroup string

const (
	HoursByProject HoursGroup = "project"
	HoursByTeam    HoursGroup = "team"
)

type HoursRequest struct {
	Range   DateRange
	GroupBy HoursGroup
}

type HoursResponse struct {
	GroupBy       HoursGroup                    `json:"groupBy"`
	CurrentStart  time.Time                     `json:"currentStart"`
	CurrentEnd    time.Time                     `json:"currentEnd"`
	PreviousStart time.Time                     `json:"previousStart"`
	PreviousEnd   time.Time                     `json:"previousEnd"`
	Rows          []utilization.HoursComparison `json:"rows"`
}
