package datescan

import (
	"strings"

	"github.com/dlclark/regexp2"

	"datesieve/internal/core/dateformat"
	"datesieve/internal/core/extracted"
	"datesieve/internal/core/fieldnorm"
)

// group returns the text of a named group or "" when it did not take part
func group(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// extract turns one match into a date value through a fresh builder
// extraZone is a zone token split off the input before matching, used when
// the match itself carries none
func (e *Engine) extract(d *dateformat.Descriptor, m *regexp2.Match, text, extraZone string) (extracted.Date, error) {
	b := extracted.NewBuilder(text, string(d.Name))

	if y := group(m, "year"); y != "" {
		year, err := fieldnorm.NormalizeYear(y)
		if err != nil {
			return extracted.Date{}, err
		}
		b.Set(extracted.FieldYear, year)
	}

	switch {
	case group(m, "week") != "":
		week, err := fieldnorm.Number(fieldnorm.StageWeek, group(m, "week"))
		if err != nil {
			return extracted.Date{}, err
		}
		wd := group(m, "wday")
		weekday := 1
		if wd != "" {
			if weekday, err = fieldnorm.Number(fieldnorm.StageWeek, wd); err != nil {
				return extracted.Date{}, err
			}
		}
		t, err := fieldnorm.WeekDate(b.Get(extracted.FieldYear), week, weekday)
		if err != nil {
			return extracted.Date{}, err
		}
		// the calendar year of the day, not the ISO week-numbering year
		b.Set(extracted.FieldYear, t.Year()).Set(extracted.FieldMonth, int(t.Month()))
		if wd != "" {
			b.Set(extracted.FieldDay, t.Day())
		}

	case group(m, "yday") != "":
		yd, err := fieldnorm.Number(fieldnorm.StageDay, group(m, "yday"))
		if err != nil {
			return extracted.Date{}, err
		}
		t, err := fieldnorm.OrdinalDate(b.Get(extracted.FieldYear), yd)
		if err != nil {
			return extracted.Date{}, err
		}
		b.Set(extracted.FieldMonth, int(t.Month())).Set(extracted.FieldDay, t.Day())

	default:
		if mo := group(m, "month"); mo != "" {
			month, err := fieldnorm.Month(mo)
			if err != nil {
				return extracted.Date{}, err
			}
			b.Set(extracted.FieldMonth, month)
		}
		if dd := group(m, "day"); dd != "" {
			day, err := fieldnorm.Number(fieldnorm.StageDay, dd)
			if err != nil {
				return extracted.Date{}, err
			}
			if err := fieldnorm.CheckDay(b.Get(extracted.FieldYear), b.Get(extracted.FieldMonth), day); err != nil {
				return extracted.Date{}, err
			}
			b.Set(extracted.FieldDay, day)
		}
	}

	if h := group(m, "hour"); h != "" {
		hour, err := fieldnorm.Hour(h, group(m, "ampm"))
		if err != nil {
			return extracted.Date{}, err
		}
		b.Set(extracted.FieldHour, hour)
		if mi := group(m, "minute"); mi != "" {
			minute, err := fieldnorm.Sexagesimal(mi)
			if err != nil {
				return extracted.Date{}, err
			}
			b.Set(extracted.FieldMinute, minute)
		}
		if s := group(m, "second"); s != "" {
			second, err := fieldnorm.Sexagesimal(s)
			if err != nil {
				return extracted.Date{}, err
			}
			b.Set(extracted.FieldSecond, second)
		}
	}

	zone := strings.TrimSpace(group(m, "zone"))
	if zone == "" {
		zone = extraZone
	}
	if zone != "" {
		known, err := fieldnorm.ApplyZone(b, zone)
		if err != nil {
			return extracted.Date{}, err
		}
		if !known {
			e.log.Debug().Str("zone", zone).Str("format", string(d.Name)).Msg("unknown zone, no shift")
		}
	}
	return b.Build(), nil
}
