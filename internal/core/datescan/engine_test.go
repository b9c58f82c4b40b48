package datescan

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datesieve/internal/core/dateformat"
	"datesieve/internal/core/exactness"
	perr "datesieve/internal/platform/errors"
)

func TestFindDate(t *testing.T) {
	e := New(nil)
	tests := []struct {
		name   string
		in     string
		want   string
		format dateformat.Name
	}{
		{"rfc1123 named zone", "Tue, 02 Jul 2010 19:07:49 GMT", "2010-07-02 19:07:49", dateformat.RFC1123},
		{"rfc1123 gmt offset", "Mon, 18 Apr 2011 09:16:00 GMT-0700", "2011-04-18 16:16:00", dateformat.RFC1123UTC},
		{"ansi c with offset", "Tue Jul 2 15:37:49 2010 -03:30", "2010-07-02 19:07:49", dateformat.ANSICTZ},
		{"unix date named zone", "Thu Feb 12 01:56:22 CET 2009", "2009-02-12 00:56:22", dateformat.UnixDate},
		{"rfc1036 named zone", "Wednesday, 11-Aug-2010 14:41:10 EDT", "2010-08-11 18:41:10", dateformat.RFC1036},
		{"iso with offset", "posted 2010-07-02T21:07:49+02:00", "2010-07-02 19:07:49", dateformat.ISO8601YMDT},
		{"eu numeric with time", ", 17/09/06 03:51:53", "2006-09-17 03:51:53", dateformat.EUDMMYT},
		{"usa month name with time", "aug 4, 2006  14:52", "2006-08-04 14:52", dateformat.USAMMMMDYT},
		{"german long form", "Dienstag, 03. Mai 2011 um 05:13", "2011-05-03 05:13", dateformat.EUDMMMMYT},
		{"clock after comma", ", 08. Februar 2010, 17:15", "2010-02-08 17:15", dateformat.EUDMMMMYT},
		{"iso week date", "2010-W29-5", "2010-07-23", dateformat.ISO8601YWD},
		{"twelve hour clock", "July 2, 2010 3:30 PM", "2010-07-02 15:30", dateformat.USAMMMMDYT},
		{"upper case month", "SEPTEMBER 1, 2010", "2010-09-01", dateformat.USAMMMMDY},
		{"abbreviated month", "Sept. 3, 2010", "2010-09-03", dateformat.USAMMMMDY},
		{"weekday and day dot", "Saturday, September 20. 2008", "2008-09-20", dateformat.USAMMMMDY},
		{"comma glued to year", "January 17,1956", "1956-01-17", dateformat.USAMMMMDY},
		{"comma glued to short year", "January 17,'56", "1956-01-17", dateformat.USAMMMMDY},
		{"abbreviated comma glued", "Jan 25,2011", "2011-01-25", dateformat.USAMMMMDY},
		{"commas around month", "Saturday, 12, November, 2011", "2011-11-12", dateformat.EUDMMMMY},
		{"eu month name over line break", "06. Feb\n06", "2006-02-06", dateformat.EUDMMMMY},
		{"usa numeric tie", "02/07/2010", "2010-02-07", dateformat.USAMMDY},
		{"basic ymd", "20100725", "2010-07-25", dateformat.ISO8601YMDNo},
		{"basic week date", "2010W295", "2010-07-23", dateformat.ISO8601YWDNo},
		{"basic ordinal", "2010203", "2010-07-22", dateformat.ISO8601YDNo},
		{"basic week", "2010W29", "2010-07", dateformat.ISO8601YWNo},
		{"german month year", "März 2010", "2010-03", dateformat.EUSAMMMMY},
		{"context year", "it happened in 2012", "2012", dateformat.ContextYYYY},
		{"url path", "http://example.com/2010/07/02/post", "2010-07-02", dateformat.URLD},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := e.FindDate(tc.in)
			require.True(t, ok, "no date in %q", tc.in)
			assert.Equal(t, tc.want, d.NormalizedString())
			assert.Equal(t, string(tc.format), d.Format())
		})
	}
}

func TestFindDateNone(t *testing.T) {
	e := New(nil)
	for _, in := range []string{"", "   ", "no dates here", "version 1.2.3", "call 2012 now"} {
		_, ok := e.FindDate(in)
		assert.False(t, ok, "unexpected date in %q", in)
	}
}

func TestFindDateAs(t *testing.T) {
	e := New(nil)
	d, ok, err := e.FindDateAs("11-12-2010 19:48:00", dateformat.USAMMDYTSep)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2010-11-12 19:48:00", d.NormalizedString())

	d, ok, err = e.FindDateAs("02.07.2010 20:07:49 +0100", dateformat.EUDMMYT)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2010-07-02 19:07:49", d.NormalizedString())

	_, ok, err = e.FindDateAs("2010-07-02", dateformat.RFC1123)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = e.FindDateAs("2010-07-02", "NOPE")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnknownFormat))
}

func TestFindDates(t *testing.T) {
	e := New(nil)

	got := e.FindDates("2007-12-06T17:37:45Z 2008-12-06T17:37:45Z")
	require.Len(t, got, 2)
	assert.Equal(t, "2007-12-06 17:37:45", got[0].NormalizedString())
	assert.Equal(t, "2008-12-06 17:37:45", got[1].NormalizedString())
	for _, d := range got {
		assert.Equal(t, exactness.Second, d.Exactness())
	}

	got = e.FindDates("Dienstag, 03. Mai 2011 um 05:13")
	require.Len(t, got, 1)
	assert.Equal(t, exactness.Minute, got[0].Exactness())
}

func TestFindDatesSpecificWins(t *testing.T) {
	e := New(nil)
	got := e.FindDates("Tue, 02 Jul 2010 19:07:49 GMT")
	require.Len(t, got, 1)
	assert.Equal(t, string(dateformat.RFC1123), got[0].Format())
	assert.Equal(t, "Tue, 02 Jul 2010 19:07:49 GMT", got[0].Text())

	got = e.FindDates("updated 2010-07-02 10:15, first seen in 2009 and again on 25.07.")
	require.Len(t, got, 3)
	assert.Equal(t, "2010-07-02 10:15", got[0].NormalizedString())
	assert.Equal(t, "2009", got[1].NormalizedString())
	assert.Equal(t, "0-07-25", got[2].NormalizedString())
	assert.Equal(t, exactness.Unset, got[2].Exactness())
}

func TestFindDatesSkipsInvalidCalendarDays(t *testing.T) {
	e := New(nil)
	assert.Empty(t, e.FindDates("31.02.2010"))

	got := e.FindDates("31.02.2010 or 28.02.2010")
	require.Len(t, got, 1)
	assert.Equal(t, "2010-02-28", got[0].NormalizedString())
}

func TestFindDatesShortYearIsNotAClock(t *testing.T) {
	e := New(nil)
	tests := []struct {
		in   string
		want string
	}{
		{"Feb 12 10:30", "0-02-12"},
		{"meeting on March 5 11:00", "0-03-05"},
	}
	for _, tc := range tests {
		got := e.FindDates(tc.in)
		require.Len(t, got, 1, tc.in)
		assert.Equal(t, tc.want, got[0].NormalizedString(), tc.in)
		assert.Equal(t, string(dateformat.USAMMMMD), got[0].Format(), tc.in)
	}
}

func TestFindDatesInvalidDateMasksItsSpan(t *testing.T) {
	e := New(nil)
	assert.Empty(t, e.FindDates("2010-02-29"))

	got := e.FindDates("2010-02-29 then 2010-03")
	require.Len(t, got, 1)
	assert.Equal(t, "2010-03", got[0].NormalizedString())
}

func TestFindDatesRejectsDigitNeighbours(t *testing.T) {
	e := New(nil)
	assert.Empty(t, e.FindDates("build 12010-07-021"))
}

func TestFindDatesAs(t *testing.T) {
	e := New(nil)
	got, err := e.FindDatesAs("2010-07-02 and 03.08.2011", dateformat.EUDMMY)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2011-08-03", got[0].NormalizedString())

	_, err = e.FindDatesAs("x", "NOPE")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnknownFormat))
}

func TestParse(t *testing.T) {
	e := New(nil)
	tests := []struct {
		in   string
		want string
	}{
		{"2010-07-02T21:07:49+02:00", "2010-07-02 19:07:49"},
		{"2010-12-31 22:37-02:30", "2011-01-01 01:07"},
		{"2010-07-02 10:00 cest", "2010-07-02 08:00"},
		{"2010-07-02", "2010-07-02"},
		{"2010", "2010"},
		{"  Tue, 02 Jul 2010 19:07:49 GMT  ", "2010-07-02 19:07:49"},
	}
	for _, tc := range tests {
		d, err := e.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, d.NormalizedString(), tc.in)
	}
}

func TestParseErrors(t *testing.T) {
	e := New(nil)

	_, err := e.Parse("definitely not a date")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNoMatch))

	_, err = e.Parse("")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNoMatch))

	_, err = e.ParseAs("2010-07-02", "NOPE")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnknownFormat))

	_, err = e.ParseAs("2010-13-02", dateformat.ISO8601YMD)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNoMatch))

	_, err = e.ParseAs("31.02.2010", dateformat.EUDMMY)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNormalization))

	// the scanner treats the same fragment as a skipped candidate
	_, ok := e.FindDate("31.02.2010")
	assert.False(t, ok)
}

func TestParseRoundTrip(t *testing.T) {
	e := New(nil)
	for _, in := range []string{
		"Tue, 02 Jul 2010 19:07:49 GMT",
		"2010-12-31 22:37-02:30",
		"Sept. 3, 2010",
		"März 2010",
		"July 2, 2010 3 PM",
		"2010W295",
		"25.07.",
		"January 17,'56",
	} {
		d, ok := e.FindDate(in)
		require.True(t, ok, in)
		again, err := e.Parse(d.NormalizedString())
		require.NoError(t, err, d.NormalizedString())
		assert.Equal(t, d.NormalizedString(), again.NormalizedString(), in)
		assert.Equal(t, d.Exactness(), again.Exactness(), in)
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	e := New(nil)
	const text = "Tue, 02 Jul 2010 19:07:49 GMT, later 2010-08-01 and in 2011"
	want := e.FindDates(text)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := e.FindDates(text)
			if assert.Len(t, got, len(want)) {
				for j := range got {
					assert.Equal(t, want[j].NormalizedString(), got[j].NormalizedString())
				}
			}
		}()
	}
	wg.Wait()
}

func TestBoundaryOK(t *testing.T) {
	r := []rune("a 2010/07/02/3 .5")
	assert.True(t, boundaryOK(r, 2, 13), "trailing slash lets a digit follow")
	assert.False(t, boundaryOK(r, 3, 6), "digit before")
	assert.False(t, boundaryOK(r, 16, 17), "dot before")
	assert.True(t, boundaryOK(r, 0, 1))
}
