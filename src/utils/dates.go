package utils

import (
	"time"
	_ "time/tzdata"
)

// DateLayout is the YYYY-MM-DD layout used for every stored date
const DateLayout = "2006-01-02"

// Clock returns the current time; tests replace it
var Clock = time.Now

// TodayIn returns the current date in the named zone, falling back to UTC
func TodayIn(tz string) string {
	now := Clock()
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		return now.UTC().Format(DateLayout)
	}
	return now.In(loc).Format(DateLayout)
}

// IsDate reports whether s is a calendar date in DateLayout
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
