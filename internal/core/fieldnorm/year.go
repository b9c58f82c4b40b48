package fieldnorm

import (
	"strconv"
	"strings"
)

// Pivot splits 2-digit years: v >= Pivot lands in the 1900s, below it in the 2000s
// It is fixed, not a window around the current year
const Pivot = 15

// StripNoDigits reduces a fragment such as "'99", "21st", "3rd," or "2012\n1" to
// its leading digit run. Input with no digits yields ""
func StripNoDigits(s string) string {
	if i := strings.IndexByte(s, '\''); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimLeft(s, " \t\r")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// FourDigitYear applies the pivot to values below 100 and passes others through
func FourDigitYear(v int) int {
	if v >= 100 {
		return v
	}
	if v >= Pivot {
		return 1900 + v
	}
	return 2000 + v
}

// NormalizeYear strips noise and returns a four digit year
func NormalizeYear(fragment string) (int, error) {
	digits := StripNoDigits(fragment)
	if digits == "" || len(digits) > 4 {
		return 0, fail(StageYear, fragment)
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fail(StageYear, fragment)
	}
	// 3 digits never come from the catalog; treat them like 4
	if len(digits) >= 3 {
		return v, nil
	}
	return FourDigitYear(v), nil
}

// Number parses a day, hour, minute or second fragment after StripNoDigits
func Number(stage, fragment string) (int, error) {
	digits := StripNoDigits(fragment)
	if digits == "" {
		return 0, fail(stage, fragment)
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fail(stage, fragment)
	}
	return v, nil
}

// Hour parses an hour fragment and folds an optional am/pm marker into 0-23
// 12 AM is midnight, PM adds 12 to 1-11
func Hour(fragment, meridiem string) (int, error) {
	h, err := Number(StageTime, fragment)
	if err != nil {
		return 0, err
	}
	switch strings.ToUpper(strings.NewReplacer(".", "", " ", "").Replace(meridiem)) {
	case "":
	case "AM":
		if h > 12 {
			return 0, fail(StageTime, fragment+" "+meridiem)
		}
		if h == 12 {
			h = 0
		}
	case "PM":
		if h > 12 {
			return 0, fail(StageTime, fragment+" "+meridiem)
		}
		if h > 0 && h < 12 {
			h += 12
		}
	default:
		return 0, fail(StageTime, meridiem)
	}
	if h > 23 {
		return 0, fail(StageTime, fragment)
	}
	return h, nil
}

// Sexagesimal parses a minute or second fragment, 0-59
func Sexagesimal(fragment string) (int, error) {
	v, err := Number(StageTime, fragment)
	if err != nil {
		return 0, err
	}
	if v > 59 {
		return 0, fail(StageTime, fragment)
	}
	return v, nil
}
