package saos

import (
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/bytedance/gg/goption"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 20

	dateLayout = "2006-01-02"
)

// Outbound query parameter names understood by the search endpoint.
const (
	ParamPageNumber       = "pageNumber"
	ParamPageSize         = "pageSize"
	ParamAll              = "all"
	ParamCourtType        = "courtType"
	ParamJudgmentType     = "judgmentType"
	ParamJudgmentDateFrom = "judgmentDateFrom"
	ParamJudgmentDateTo   = "judgmentDateTo"
)

// Params is the outbound query mapping for a search call.
type Params map[string]any

// Encode renders p as a URL query string sorted by key.
func (p Params) Encode() string {
	values := make(url.Values, len(p))
	for k, v := range p {
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode()
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SearchCriteria are the caller-supplied filters and pagination of one search.
type SearchCriteria struct {
	Query        goption.O[string]
	CourtType    goption.O[string]
	JudgmentType goption.O[string]
	DateFrom     goption.O[time.Time]
	DateTo       goption.O[time.Time]
	Page         int
	PageSize     int
}

// NewSearchCriteria returns criteria with no filters on the first page.
func NewSearchCriteria() SearchCriteria {
	return SearchCriteria{
		Query:        goption.Nil[string](),
		CourtType:    goption.Nil[string](),
		JudgmentType: goption.Nil[string](),
		DateFrom:     goption.Nil[time.Time](),
		DateTo:       goption.Nil[time.Time](),
		Page:         DefaultPage,
		PageSize:     DefaultPageSize,
	}
}

// Params maps the criteria onto the search endpoint's query parameters.
// Pagination is always present. Blank text filters are dropped the same way
// absent ones are.
func (c SearchCriteria) Params() Params {
	params := Params{
		ParamPageNumber: c.Page,
		ParamPageSize:   c.PageSize,
	}

	setText(params, ParamAll, c.Query)
	setText(params, ParamCourtType, c.CourtType)
	setText(params, ParamJudgmentType, c.JudgmentType)
	setDate(params, ParamJudgmentDateFrom, c.DateFrom)
	setDate(params, ParamJudgmentDateTo, c.DateTo)

	return params
}

func setText(params Params, key string, v goption.O[string]) {
	if s, ok := v.Get(); ok && s != "" {
		params[key] = s
	}
}

func setDate(params Params, key string, v goption.O[time.Time]) {
	if d, ok := v.Get(); ok {
		params[key] = d.Format(dateLayout)
	}
}
