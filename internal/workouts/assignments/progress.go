package assignments

import (
	"time"

	"github.com/2beens/gymweeks/pkg"
)

const (
	WeekLength = 7
)

type WeekProgress struct {
	Assignment     Assignment `json:"assignment"`
	Start          pkg.Date   `json:"start"`
	End            pkg.Date   `json:"end"`
	DaysElapsed    int        `json:"daysElapsed"`
	TotalDays      int        `json:"totalDays"`
	CompletedCount int        `json:"completedCount"`
	CompletionRate float64    `json:"completionRate"`
	CanRenew       bool       `json:"canRenew"`
	IsCurrentWeek  bool       `json:"isCurrentWeek"`
}

// WeekEnd returns the last day of the 7 day window starting at start.
func WeekEnd(start time.Time) time.Time {
	return pkg.AddDays(start, WeekLength-1)
}

// ComputeWeekProgress derives the progress of an assignment's week as seen on today.
// totalDays is the number of days in the assigned week template, completedCount
// the number of completed logs dated within the week window.
func ComputeWeekProgress(a Assignment, totalDays, completedCount int, today time.Time) WeekProgress {
	start := pkg.Day(a.StartDate.Time)
	end := WeekEnd(start)
	sinceStart := pkg.DaysBetween(start, today)

	daysElapsed := sinceStart + 1
	if daysElapsed < 0 {
		daysElapsed = 0
	}
	if daysElapsed > WeekLength {
		daysElapsed = WeekLength
	}

	completionRate := 0.0
	if totalDays > 0 {
		completionRate = float64(completedCount) / float64(totalDays) * 100
	}

	day := pkg.Day(today)
	return WeekProgress{
		Assignment:     a,
		Start:          pkg.NewDate(start),
		End:            pkg.NewDate(end),
		DaysElapsed:    daysElapsed,
		TotalDays:      totalDays,
		CompletedCount: completedCount,
		CompletionRate: completionRate,
		CanRenew:       sinceStart >= WeekLength,
		IsCurrentWeek:  !day.Before(start) && !day.After(end),
	}
}
