package valid

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage_Defaults(t *testing.T) {
	p, err := ParsePage(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, Page{Page: 1, Limit: 10}, p)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePage_Offset(t *testing.T) {
	p, err := ParsePage(url.Values{"page": {"3"}, "limit": {"25"}})
	require.NoError(t, err)

	assert.Equal(t, 50, p.Offset())
}

func TestParsePage_Invalid(t *testing.T) {
	_, err := ParsePage(url.Values{"page": {"0"}, "limit": {"ten"}})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("page", RuleTooSmall))
	assert.True(t, verr.Has("limit", RuleWrongType))
}

func TestParsePage_LimitCapped(t *testing.T) {
	p, err := ParsePage(url.Values{"limit": {"100"}})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, p.Limit)

	_, err = ParsePage(url.Values{"limit": {"101"}})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "limit", Rule: RuleTooLarge, Param: "100"}}, verr.Fields)
}

func TestParsePage_OffsetOverflow(t *testing.T) {
	_, err := ParsePage(url.Values{"page": {"9223372036854775807"}, "limit": {"2"}})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "page", verr.Fields[0].Field)
	assert.Equal(t, RuleTooLarge, verr.Fields[0].Rule)
}

func TestPage_OffsetSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, Page{Page: math.MaxInt, Limit: 2}.Offset())
	assert.Equal(t, 0, Page{Page: 0, Limit: 2}.Offset())
}
