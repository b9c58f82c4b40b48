package fieldnorm

import (
	"strconv"
	"strings"
)

// months maps lower case English and German names and abbreviations to 1-12
var months = map[string]int{
	"jan": 1, "january": 1, "januar": 1, "jänner": 1,
	"feb": 2, "february": 2, "februar": 2,
	"mar": 3, "march": 3, "mär": 3, "märz": 3, "maerz": 3,
	"apr": 4, "april": 4,
	"may": 5, "mai": 5,
	"jun": 6, "june": 6, "juni": 6,
	"jul": 7, "july": 7, "juli": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10, "okt": 10, "oktober": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12, "dez": 12, "dezember": 12,
}

var monthNoise = strings.NewReplacer(",", "", ".", "", " ", "")

// MonthNumber resolves a month name (case-insensitive, punctuation ignored) to 1-12
func MonthNumber(name string) (int, error) {
	key := strings.ToLower(monthNoise.Replace(name))
	if n, ok := months[key]; ok {
		return n, nil
	}
	return 0, fail(StageMonth, name)
}

// MonthString resolves a month name to its 2-digit form, eg "Juli" -> "07"
func MonthString(name string) (string, error) {
	n, err := MonthNumber(name)
	if err != nil {
		return "", err
	}
	if n < 10 {
		return "0" + strconv.Itoa(n), nil
	}
	return strconv.Itoa(n), nil
}

// Month resolves a numeric or named month fragment
func Month(fragment string) (int, error) {
	s := strings.TrimSpace(fragment)
	if isDigits(s) {
		n, _ := strconv.Atoi(s)
		if n < 1 || n > 12 {
			return 0, fail(StageMonth, fragment)
		}
		return n, nil
	}
	return MonthNumber(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
