package service

import (
	"fmt"
	"time"
)

// academicYearStart is September 1st of the current academic year: the one
// just past, so January through August count from the previous year.
func academicYearStart(today time.Time) time.Time {
	year := today.Year()
	if today.Month() < time.September {
		year--
	}
	return time.Date(year, time.September, 1, 0, 0, 0, 0, today.Location())
}

// WeekNumber counts plain 7-day blocks from September 1st: days 1-7 are week
// 1, days 8-14 week 2 and so on.
func WeekNumber(today time.Time) int {
	return daysBetween(academicYearStart(today), today)/7 + 1
}

// daysBetween counts calendar days, immune to DST shifts.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// FormatWeekMessage renders the /week reply.
func FormatWeekMessage(today time.Time) string {
	start := academicYearStart(today)
	week := WeekNumber(today)
	parity := "odd"
	if week%2 == 0 {
		parity = "even"
	}
	return fmt.Sprintf(
		"Today: %s\nWeek <b>%d</b> (%s) counting from 1 September %d.",
		today.Format("02.01.2006"), week, parity, start.Year(),
	)
}
