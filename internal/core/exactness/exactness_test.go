package exactness

import (
	"encoding/json"
	"testing"
)

func TestProvides(t *testing.T) {
	cases := []struct {
		a, b Exactness
		want bool
	}{
		{Second, Minute, true},
		{Second, Second, true},
		{Minute, Second, false},
		{Day, Year, true},
		{Year, Month, false},
		{Unset, Year, false},
		{Year, Unset, true},
	}
	for _, c := range cases {
		if got := c.a.Provides(c.b); got != c.want {
			t.Fatalf("%s.Provides(%s) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCommon(t *testing.T) {
	if got := Common(Second, Day); got != Day {
		t.Fatalf("Common(Second, Day) = %s", got)
	}
	if got := Common(Month, Minute); got != Month {
		t.Fatalf("Common(Month, Minute) = %s", got)
	}
}

func TestOrderIsTotal(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if !(all[i] > all[i-1]) {
			t.Fatalf("order broken at %s", all[i])
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, e := range append(All(), Unset) {
		b, err := json.Marshal(e)
		if err != nil {
			t.Fatalf("marshal %s: %v", e, err)
		}
		var back Exactness
		if err := json.Unmarshal(b, &back); err != nil || back != e {
			t.Fatalf("round trip %s -> %s -> %s (%v)", e, b, back, err)
		}
	}
	if _, err := Parse("fortnight"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if got, _ := Parse(" minute "); got != Minute {
		t.Fatalf("Parse trims and folds case, got %s", got)
	}
	if Exactness(42).String() != "Exactness(42)" {
		t.Fatalf("unexpected invalid render")
	}
}
