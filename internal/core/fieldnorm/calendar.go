package fieldnorm

import (
	"strconv"
	"time"
)

// DaysIn returns the number of days of month in year
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CheckDay validates day against month (and year when known, leap years)
func CheckDay(year, month, day int) error {
	limit := 31
	if month >= 1 && month <= 12 {
		y := year
		if y < 0 {
			y = 2000 // leap, so 29.02. without a year stays valid
		}
		limit = DaysIn(y, month)
	}
	if day < 1 || day > limit {
		return fail(StageDay, strconv.Itoa(day))
	}
	return nil
}

// WeekDate resolves an ISO 8601 week date (Monday is day 1, week 1 holds January 4)
func WeekDate(year, week, weekday int) (time.Time, error) {
	if week < 1 || week > 53 || weekday < 1 || weekday > 7 {
		return time.Time{}, fail(StageWeek, strconv.Itoa(week)+"-"+strconv.Itoa(weekday))
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	back := (int(jan4.Weekday()) + 6) % 7
	t := jan4.AddDate(0, 0, -back+(week-1)*7+weekday-1)
	if y, w := t.ISOWeek(); y != year || w != week {
		return time.Time{}, fail(StageWeek, strconv.Itoa(year)+"-W"+strconv.Itoa(week))
	}
	return t, nil
}

// OrdinalDate resolves a day of year 1-365 (366 in leap years)
func OrdinalDate(year, yday int) (time.Time, error) {
	t := time.Date(year, time.January, yday, 0, 0, 0, 0, time.UTC)
	if yday < 1 || t.Year() != year {
		return time.Time{}, fail(StageDay, strconv.Itoa(yday))
	}
	return t, nil
}
