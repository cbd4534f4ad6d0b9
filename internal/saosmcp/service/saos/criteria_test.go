package saos

import (
	"reflect"
	"testing"
	"time"

	"github.com/bytedance/gg/goption"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestSearchCriteria_Params(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria func() SearchCriteria
		want     Params
	}{
		{
			name:     "defaults only carry pagination",
			criteria: NewSearchCriteria,
			want:     Params{"pageNumber": 0, "pageSize": 20},
		},
		{
			name: "all fields renamed and dates formatted",
			criteria: func() SearchCriteria {
				c := NewSearchCriteria()
				c.Query = goption.OK("frankowicze")
				c.CourtType = goption.OK("COMMON")
				c.JudgmentType = goption.OK("SENTENCE")
				c.DateFrom = goption.OK(date(t, "2020-01-05"))
				c.DateTo = goption.OK(time.Date(2021, time.December, 31, 23, 59, 0, 0, time.UTC))
				c.Page = 3
				c.PageSize = 50
				return c
			},
			want: Params{
				"pageNumber":       3,
				"pageSize":         50,
				"all":              "frankowicze",
				"courtType":        "COMMON",
				"judgmentType":     "SENTENCE",
				"judgmentDateFrom": "2020-01-05",
				"judgmentDateTo":   "2021-12-31",
			},
		},
		{
			name: "blank strings are treated as absent",
			criteria: func() SearchCriteria {
				c := NewSearchCriteria()
				c.Query = goption.OK("")
				c.CourtType = goption.OK("")
				c.JudgmentType = goption.OK("")
				return c
			},
			want: Params{"pageNumber": 0, "pageSize": 20},
		},
		{
			name: "zero pagination is still sent",
			criteria: func() SearchCriteria {
				c := NewSearchCriteria()
				c.PageSize = 0
				c.DateTo = goption.OK(date(t, "1999-02-28"))
				return c
			},
			want: Params{"pageNumber": 0, "pageSize": 0, "judgmentDateTo": "1999-02-28"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.criteria().Params()
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Params() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSearchCriteria_ParamsDeterministic(t *testing.T) {
	t.Parallel()

	c := NewSearchCriteria()
	c.Query = goption.OK("umowa")
	c.DateFrom = goption.OK(date(t, "2019-06-01"))

	first := c.Params()
	for i := 0; i < 10; i++ {
		if got := c.Params(); !reflect.DeepEqual(got, first) {
			t.Fatalf("Params() changed between calls: %#v vs %#v", got, first)
		}
		if got := c.Params().Encode(); got != first.Encode() {
			t.Fatalf("Encode() changed between calls: %q vs %q", got, first.Encode())
		}
	}
}

func TestParams_EncodeAndKeys(t *testing.T) {
	t.Parallel()

	p := Params{"pageSize": 20, "all": "kara umowna", "pageNumber": 0}
	if got, want := p.Encode(), "all=kara+umowna&pageNumber=0&pageSize=20"; got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
	if got, want := p.Keys(), []string{"all", "pageNumber", "pageSize"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
}

func TestConfig_JudgmentURL(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if got, want := cfg.JudgmentURL(999), "https://www.saos.org.pl/api/judgments/999"; got != want {
		t.Fatalf("JudgmentURL() = %q, want %q", got, want)
	}
	if cfg.Timeout != 20*time.Second {
		t.Fatalf("default timeout = %v, want 20s", cfg.Timeout)
	}
}
