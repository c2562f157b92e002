/*
Package valid is the input validation gateway.

It turns untrusted payloads into typed values using go-playground/validator
struct tags and reports every violation as a field-level rule, so a client can
correct a request without guessing. It performs no I/O and knows nothing about
uniqueness or existence of records.
*/
package valid

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule names reported in FieldError.Rule.
const (
	RuleMissing      = "missing"
	RuleWrongType    = "wrong_type"
	RuleTooShort     = "too_short"
	RuleTooLong      = "too_long"
	RuleTooSmall     = "too_small"
	RuleTooLarge     = "too_large"
	RuleBadFormat    = "bad_format"
	RuleNotInEnum    = "not_in_enum"
	RuleUnknownField = "unknown_field"
	RuleMalformed    = "malformed"
)

// bodyField is the pseudo field name used when the payload as a whole is unreadable.
const bodyField = "body"

// FieldError describes a single rule violated by a single field.
type FieldError struct {
	// Field is the JSON path of the offending field (e.g. "permissions.canEditPost").
	Field string `json:"field"`

	// Rule is one of the Rule* constants.
	Rule string `json:"rule"`

	// Param carries the rule argument when there is one (minimum length, allowed values).
	Param string `json:"param,omitempty"`
}

// Error is returned whenever a payload does not satisfy its contract.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Rule)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field violated rule.
func (e *Error) Has(field, rule string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Rule == rule {
			return true
		}
	}
	return false
}

var (
	validate = newValidator()

	// enumTags maps registered enum tags to their allowed values, for error params.
	enumTags = map[string]string{}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})

	// maxbytes bounds the encoded length of a string, for consumers such as
	// bcrypt that count bytes rather than characters.
	err := v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic("valid: maxbytes param " + strconv.Quote(fl.Param()))
		}
		return len(fl.Field().String()) <= n
	})
	if err != nil {
		panic("valid: register maxbytes: " + err.Error())
	}

	return v
}

// RegisterEnum registers a string validation tag that accepts only the given values.
// It must be called during package initialization, before any validation runs.
func RegisterEnum(tag string, values ...string) {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}

	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic("valid: register enum " + tag + ": " + err.Error())
	}

	enumTags[tag] = strings.Join(values, " ")
}

// Struct checks v against its struct tags.
func Struct(v any) error {
	fields, err := structFields(v)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}

// Decode parses data as JSON into a T and validates the result.
// Any failure, including unreadable JSON, is reported as *Error.
func Decode[T any](data []byte) (T, error) {
	var v T

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var fields []FieldError
	if err := dec.Decode(&v); err != nil {
		fe, ok := decodeFailure(err)
		if !ok {
			return v, &Error{Fields: []FieldError{{Field: bodyField, Rule: RuleMalformed}}}
		}
		fields = append(fields, fe)
	}

	if dec.More() {
		return v, &Error{Fields: []FieldError{{Field: bodyField, Rule: RuleMalformed}}}
	}

	structErrs, err := structFields(&v)
	if err != nil {
		return v, &Error{Fields: []FieldError{{Field: bodyField, Rule: RuleMalformed}}}
	}

	for _, fe := range structErrs {
		// A wrong-typed field decodes to its zero value; report it once.
		if len(fields) > 0 && fe.Field == fields[0].Field {
			continue
		}
		fields = append(fields, fe)
	}

	if len(fields) > 0 {
		return v, &Error{Fields: fields}
	}
	return v, nil
}

// decodeFailure converts a JSON decoding error that concerns a single field.
// It reports false for errors that make the whole payload unusable.
func decodeFailure(err error) (FieldError, bool) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return FieldError{}, false
		}
		return FieldError{Field: typeErr.Field, Rule: RuleWrongType, Param: typeErr.Type.String()}, true
	}

	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		if unquoted, uerr := strconv.Unquote(name); uerr == nil {
			name = unquoted
		}
		return FieldError{Field: name, Rule: RuleUnknownField}, true
	}

	return FieldError{}, false
}

func structFields(v any) ([]FieldError, error) {
	err := validate.Struct(v)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, toFieldError(fe))
	}
	return fields, nil
}

func toFieldError(fe validator.FieldError) FieldError {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	out := FieldError{Field: field, Param: fe.Param()}

	switch fe.Tag() {
	case "required":
		out.Rule = RuleMissing
	case "min":
		out.Rule = RuleTooShort
		if isNumber(fe.Kind()) {
			out.Rule = RuleTooSmall
		}
	case "max":
		out.Rule = RuleTooLong
		if isNumber(fe.Kind()) {
			out.Rule = RuleTooLarge
		}
	case "maxbytes":
		out.Rule = RuleTooLong
	case "email", "url", "http_url":
		out.Rule = RuleBadFormat
	default:
		if values, ok := enumTags[fe.Tag()]; ok {
			out.Rule = RuleNotInEnum
			out.Param = values
		} else {
			out.Rule = fe.Tag()
		}
	}

	return out
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
