// Package contract re-exports the request and response types shared by the
// service layer, the CLI and the HTTP API.
package contract

import "github.com/alexanderramin/teamload/internal/app"

type RequestErrorCode = app.RequestErrorCode

const (
	ErrInvalidRange RequestErrorCode = app.ErrInvalidRange
	ErrInvalidDate  RequestErrorCode = app.ErrInvalidDate
	ErrNotFound     RequestErrorCode = app.ErrNotFound
)

type RequestError = app.RequestError

type DateRange = app.DateRange

func ParseDateRange(from, to string) (DateRange, error) {
	return app.ParseDateRange(from, to)
}

func ParseRangeOrWeek(week, from, to string) (DateRange, error) {
	return app.ParseRangeOrWeek(week, from, to)
}
