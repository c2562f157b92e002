package valid

import (
	"math"
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the page size used when the query omits limit.
	DefaultLimit = 10

	// DefaultPage is the page number used when the query omits page.
	DefaultPage = 1

	// MaxLimit is the largest page size a client may request.
	MaxLimit = 100
)

// Page is a validated pagination request. Pages are 1-based.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the number of records to skip.
// A page whose offset does not fit in an int saturates at math.MaxInt.
func (p Page) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// ParsePage reads limit and page from a query string, applying defaults.
// Both must be integers >= 1 when present, limit may not exceed MaxLimit,
// and the resulting offset must fit in an int.
func ParsePage(q url.Values) (Page, error) {
	var fields []FieldError

	limit, fe := positiveInt(q, "limit", DefaultLimit)
	if fe == nil && limit > MaxLimit {
		fe = &FieldError{Field: "limit", Rule: RuleTooLarge, Param: strconv.Itoa(MaxLimit)}
	}
	if fe != nil {
		fields = append(fields, *fe)
	}

	page, fe := positiveInt(q, "page", DefaultPage)
	if fe == nil && len(fields) == 0 && page-1 > math.MaxInt/limit {
		fe = &FieldError{Field: "page", Rule: RuleTooLarge, Param: strconv.Itoa(math.MaxInt/limit + 1)}
	}
	if fe != nil {
		fields = append(fields, *fe)
	}

	if len(fields) > 0 {
		return Page{}, &Error{Fields: fields}
	}
	return Page{Page: page, Limit: limit}, nil
}

func positiveInt(q url.Values, key string, def int) (int, *FieldError) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: key, Rule: RuleWrongType, Param: "int"}
	}

	if n < 1 {
		return 0, &FieldError{Field: key, Rule: RuleTooSmall, Param: "1"}
	}

	return n, nil
}
