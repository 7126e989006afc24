package domain

// ProjectStatus values are the labels the backend stores verbatim.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "시작전"
	ProjectOnHold     ProjectStatus = "보류"
	ProjectWaiting    ProjectStatus = "대기"
	ProjectInProgress ProjectStatus = "진행중"
	ProjectReview     ProjectStatus = "검수"
	ProjectCompleted  ProjectStatus = "완료"
)

// ValidProjectStatuses is the canonical set of accepted project status labels.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectNotStarted: true,
	ProjectOnHold:     true,
	ProjectWaiting:    true,
	ProjectInProgress: true,
	ProjectReview:     true,
	ProjectCompleted:  true,
}

// ScheduleStatus is the delay state of a project or task. The empty value
// means the status does not apply.
type ScheduleStatus string

const (
	ScheduleNone     ScheduleStatus = ""
	ScheduleNormal   ScheduleStatus = "normal"
	ScheduleImminent ScheduleStatus = "imminent"
	ScheduleDelayed  ScheduleStatus = "delayed"
)

type PeriodBucket string

const (
	PeriodNone          PeriodBucket = ""
	PeriodOverdue2Month PeriodBucket = "overdue2Month"
	PeriodOverdue1Month PeriodBucket = "overdue1Month"
	PeriodImminent      PeriodBucket = "imminent"
	PeriodOneMonth      PeriodBucket = "oneMonth"
	PeriodTwoMonths     PeriodBucket = "twoMonths"
	PeriodThreeMonths   PeriodBucket = "threeMonths"
	PeriodLongTerm      PeriodBucket = "longTerm"
)

type UtilizationStatus string

const (
	UtilizationMissingWork UtilizationStatus = "missing_work"
	UtilizationLow         UtilizationStatus = "low"
	UtilizationNormal      UtilizationStatus = "normal"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
	TrendNew    Trend = "new"
	TrendEnd    Trend = "end"
)
