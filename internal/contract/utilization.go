package contract

import "github.com/alexanderramin/teamload/internal/app"

type UtilizationRequest = app.UtilizationRequest

type UtilizationResponse = app.UtilizationResponse

type WeeklyResponse = app.WeeklyResponse

type RankingResponse = app.RankingResponse

type HoursGroup = app.HoursGroup

const (
	HoursByProject HoursGroup = app.HoursByProject
	HoursByTeam    HoursGroup = app.HoursByTeam
)

type HoursRequest = app.HoursRequest

type HoursResponse = app.HoursResponse
