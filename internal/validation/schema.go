package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// validate is shared by every Decode call. A *validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their input key instead of the Go field name.
	v.RegisterTagNameFunc(inputName)

	if err := v.RegisterValidation("email_domain", dottedEmailDomain); err != nil {
		panic(err)
	}

	return v
}

// dottedEmailDomain requires the part after the last "@" to be at least two
// non-empty dot-separated labels, so "a@b" is rejected.
func dottedEmailDomain(fl validator.FieldLevel) bool {
	s := fl.Field().String()

	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}

	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}
	return true
}

// inputName returns the key a struct field is read from, or "" when the
// field takes no input.
func inputName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Decode fills the record pointed to by dst from raw and validates it.
//
// Each tagged field is looked up in raw by its `mapstructure` key. Absent
// keys and nil values leave the field at its zero value, which for the
// pointer fields records use means "absent". Present values are decoded
// with weak typing so "42" from a query string becomes an int. A value that
// cannot be decoded is a KindType violation. The record is then checked
// against its `validate` tags and every failure is collected.
//
// dst must be a non-nil pointer to a struct; anything else is a programming
// error and panics. On failure dst holds a partial record that must not be
// used.
func Decode(raw map[string]any, dst any) Violations {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("validation: Decode needs a non-nil struct pointer, got %T", dst))
	}

	record := rv.Elem()
	recordType := record.Type()

	var violations Violations
	undecodable := make(map[string]bool)

	for i := 0; i < recordType.NumField(); i++ {
		field := recordType.Field(i)
		name := inputName(field)
		if name == "" || !field.IsExported() {
			continue
		}

		value, ok := raw[name]
		if !ok || value == nil {
			continue
		}

		decoded, err := decodeValue(value, field.Type)
		if err != nil {
			undecodable[name] = true
			violations = append(violations, Violation{
				Field:   name,
				Kind:    KindType,
				Message: "must be a valid " + typeName(field.Type),
			})
			continue
		}

		record.Field(i).Set(decoded)
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			panic(fmt.Sprintf("validation: unexpected validator error: %v", err))
		}

		for _, fe := range fieldErrors {
			// The field already has a type violation; the validator only
			// sees it as absent.
			if undecodable[fe.Field()] {
				continue
			}
			violations = append(violations, violationFor(fe))
		}
	}

	return violations
}

// decodeValue converts value into a new value of type typ.
func decodeValue(value any, typ reflect.Type) (reflect.Value, error) {
	elem := typ
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	// Weak decoding would turn "" into 0 or false; an empty string is not a
	// number.
	if s, ok := value.(string); ok && s == "" && elem.Kind() != reflect.String {
		return reflect.Value{}, fmt.Errorf("empty value for %s", elem.Kind())
	}

	target := reflect.New(typ)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decimalIntHook,
		WeaklyTypedInput: true,
		Result:           target.Interface(),
	})
	if err != nil {
		return reflect.Value{}, err
	}

	if err := decoder.Decode(value); err != nil {
		return reflect.Value{}, err
	}
	return target.Elem(), nil
}

// decimalIntHook parses strings bound for integer fields as plain base-10
// numbers. Weak decoding alone accepts Go literals, so "010" would be 8 and
// "0x3" would be 3.
func decimalIntHook(from, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || from.Kind() != reflect.String {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(s, 10, to.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseUint(s, 10, to.Bits())
	default:
		return data, nil
	}
}

func typeName(typ reflect.Type) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	default:
		return typ.Kind().String()
	}
}

// violationFor maps a validator failure onto a violation kind and message.
func violationFor(fe validator.FieldError) Violation {
	isString := fe.Kind() == reflect.String
	param := fe.Param()

	violation := Violation{Field: fe.Field()}

	switch fe.Tag() {
	case "required":
		violation.Kind = KindMissing
		violation.Message = "is required"

	case "min":
		if isString {
			violation.Kind = KindLength
			violation.Message = fmt.Sprintf("must be at least %s characters", param)
		} else {
			violation.Kind = KindRange
			violation.Message = fmt.Sprintf("must be at least %s", param)
		}

	case "max":
		if isString {
			violation.Kind = KindLength
			violation.Message = fmt.Sprintf("must not exceed %s characters", param)
		} else {
			violation.Kind = KindRange
			violation.Message = fmt.Sprintf("must not exceed %s", param)
		}

	case "len":
		violation.Kind = KindLength
		violation.Message = fmt.Sprintf("must be exactly %s characters", param)

	case "gt":
		violation.Kind = KindRange
		violation.Message = fmt.Sprintf("must be greater than %s", param)

	case "gte":
		violation.Kind = KindRange
		violation.Message = fmt.Sprintf("must be at least %s", param)

	case "lt":
		violation.Kind = KindRange
		violation.Message = fmt.Sprintf("must be less than %s", param)

	case "lte":
		violation.Kind = KindRange
		violation.Message = fmt.Sprintf("must not exceed %s", param)

	case "oneof":
		violation.Kind = KindEnum
		violation.Message = "must be one of: " + strings.Join(strings.Fields(param), ", ")

	case "email", "email_domain":
		violation.Kind = KindFormat
		violation.Message = "must be a valid email address"

	default:
		violation.Kind = KindFormat
		if param != "" {
			violation.Message = fmt.Sprintf("failed %s:%s", fe.Tag(), param)
		} else {
			violation.Message = "failed " + fe.Tag()
		}
	}

	return violation
}
