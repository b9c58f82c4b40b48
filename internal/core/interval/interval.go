// Package interval sums free-form duration phrases such as "4 hrs 20 mins"
package interval

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// longer unit spellings come first so "mins" is not read as "m" plus "ins"
var pairRe = regexp.MustCompile(`(?i)([0-9]+(?:[.,][0-9]+)?)\s*(days|day|d|hours|hour|hrs|hr|h|minutes|minute|mins|min|m|seconds|second|secs|sec|s)\b`)

// Parse returns the total number of seconds in text; no recognizable pair is 0
func Parse(text string) float64 {
	var total float64
	for _, m := range pairRe.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		total += v * unitSeconds(strings.ToLower(m[2]))
	}
	return total
}

// ParseDuration is Parse as a time.Duration
func ParseDuration(text string) time.Duration {
	return time.Duration(Parse(text) * float64(time.Second))
}

func unitSeconds(u string) float64 {
	switch u[0] {
	case 'd':
		return 86400
	case 'h':
		return 3600
	case 'm':
		return 60
	}
	return 1
}
