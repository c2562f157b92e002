package valid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flags struct {
	On *bool `json:"on" validate:"required"`
}

type signup struct {
	Name  string  `json:"name" validate:"required"`
	Nick  *string `json:"nick,omitempty" validate:"omitempty,min=3"`
	Email string  `json:"email" validate:"required,email"`
	Pass  string  `json:"pass" validate:"required,min=6,max=8"`
	Site  string  `json:"site,omitempty" validate:"omitempty,url"`
	Tier  string  `json:"tier,omitempty" validate:"omitempty,tier"`
	Age   int     `json:"age,omitempty" validate:"omitempty,min=18"`
	Flags *flags  `json:"flags,omitempty"`
}

func init() {
	RegisterEnum("tier", "gold", "silver")
}

func decodeErr(t *testing.T, body string) *Error {
	t.Helper()

	_, err := Decode[signup]([]byte(body))
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok, "expected *valid.Error, got %T", err)
	return verr
}

func TestDecode_Valid(t *testing.T) {
	in, err := Decode[signup]([]byte(`{"name":"Ana","email":"ana@example.com","pass":"secret","tier":"gold"}`))
	require.NoError(t, err)

	assert.Equal(t, "Ana", in.Name)
	assert.Equal(t, "gold", in.Tier)
	assert.Nil(t, in.Nick)
}

func TestDecode_ReportsEveryField(t *testing.T) {
	verr := decodeErr(t, `{"nick":"ab","email":"nope","pass":"123"}`)

	assert.True(t, verr.Has("name", RuleMissing))
	assert.True(t, verr.Has("nick", RuleTooShort))
	assert.True(t, verr.Has("email", RuleBadFormat))
	assert.True(t, verr.Has("pass", RuleTooShort))
	assert.Len(t, verr.Fields, 4)
}

func TestDecode_Rules(t *testing.T) {
	base := `"name":"Ana","email":"ana@example.com","pass":"secret"`

	tests := []struct {
		name  string
		body  string
		field string
		rule  string
	}{
		{"too long", `{"name":"Ana","email":"ana@example.com","pass":"123456789"}`, "pass", RuleTooLong},
		{"bad url", `{` + base + `,"site":"not a url"}`, "site", RuleBadFormat},
		{"enum", `{` + base + `,"tier":"bronze"}`, "tier", RuleNotInEnum},
		{"number too small", `{` + base + `,"age":3}`, "age", RuleTooSmall},
		{"wrong type", `{` + base + `,"age":"old"}`, "age", RuleWrongType},
		{"nested missing", `{` + base + `,"flags":{}}`, "flags.on", RuleMissing},
		{"nested wrong type", `{` + base + `,"flags":{"on":"yes"}}`, "flags.on", RuleWrongType},
		{"unknown field", `{` + base + `,"admin":true}`, "admin", RuleUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := decodeErr(t, tt.body)
			assert.True(t, verr.Has(tt.field, tt.rule), "fields: %+v", verr.Fields)
		})
	}
}

func TestDecode_EnumParamListsAllowedValues(t *testing.T) {
	verr := decodeErr(t, `{"name":"Ana","email":"ana@example.com","pass":"secret","tier":"bronze"}`)

	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "gold silver", verr.Fields[0].Param)
}

func TestDecode_WrongTypeReportedOnce(t *testing.T) {
	verr := decodeErr(t, `{"name":42,"email":"ana@example.com","pass":"secret"}`)

	require.Len(t, verr.Fields, 1)
	assert.Equal(t, FieldError{Field: "name", Rule: RuleWrongType, Param: "string"}, verr.Fields[0])
}

func TestDecode_Malformed(t *testing.T) {
	for _, body := range []string{``, `{`, `[1,2]`, `{"name":"Ana"} {"name":"Bo"}`} {
		verr := decodeErr(t, body)
		assert.Equal(t, []FieldError{{Field: "body", Rule: RuleMalformed}}, verr.Fields, "body %q", body)
	}
}

func TestStruct(t *testing.T) {
	nick := "Al"
	err := Struct(&signup{Name: "Ana", Email: "ana@example.com", Pass: "secret", Nick: &nick})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("nick", RuleTooShort))
	assert.Equal(t, "3", verr.Fields[0].Param)

	assert.NoError(t, Struct(&signup{Name: "Ana", Email: "ana@example.com", Pass: "secret"}))
}

func TestError_Message(t *testing.T) {
	err := &Error{Fields: []FieldError{
		{Field: "name", Rule: RuleMissing},
		{Field: "email", Rule: RuleBadFormat},
	}}

	assert.Equal(t, "validation failed: name: missing; email: bad_format", err.Error())
	assert.False(t, err.Has("name", RuleTooShort))
}

type secret struct {
	Key string `json:"key" validate:"required,min=2,maxbytes=4"`
}

func TestDecode_MaxBytesCountsEncodedLength(t *testing.T) {
	_, err := Decode[secret]([]byte(`{"key":"abcd"}`))
	require.NoError(t, err)

	// Three runes, six bytes.
	_, err = Decode[secret]([]byte(`{"key":"ééé"}`))

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "key", Rule: RuleTooLong, Param: "4"}}, verr.Fields)
}
