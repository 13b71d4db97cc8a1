package money

import (
	"encoding/json"
	"fmt"
)

// errCode discriminates the failure cases of monetary arithmetic.
type errCode uint8

const (
	codeUnknown errCode = iota
	codeMismatch
	codeDivideByZero
)

// Error describes why a computation could not produce an amount.
// There are exactly three cases:
//
//   - unknown currency, the state of a computation that has not seen any
//     amount yet, such as the sum of an empty sequence;
//   - currency mismatch, raised when amounts in different currencies are
//     combined;
//   - division by zero, raised when an amount is divided by a zero factor.
//
// The zero value is the unknown currency error.
// Error is comparable and safe for concurrent use.
//
// Error values are produced by [Result] operations and recovered from them
// with [Result.Err] and [errors.As]; there are no public constructors.
type Error struct {
	code errCode
	a, b Currency
}

// Error implements the error interface.
//
// The three cases render as:
//
//	unknown currency
//	mismatch currency 'EUR' and 'USD'
//	divide by zero
func (e Error) Error() string {
	switch e.code {
	case codeMismatch:
		return fmt.Sprintf("mismatch currency '%v' and '%v'", e.a, e.b)
	case codeDivideByZero:
		return "divide by zero"
	default:
		return "unknown currency"
	}
}

// IsUnknown reports whether e is the unknown currency error.
func (e Error) IsUnknown() bool {
	return e.code == codeUnknown
}

// IsMismatch reports whether e is a currency mismatch error.
func (e Error) IsMismatch() bool {
	return e.code == codeMismatch
}

// IsDivideByZero reports whether e is a division by zero error.
func (e Error) IsDivideByZero() bool {
	return e.code == codeDivideByZero
}

// Currencies returns the currencies of a mismatch error, in the order the
// operands were combined.
// For the other cases it returns [XXX] twice.
func (e Error) Currencies() (Currency, Currency) {
	if e.code != codeMismatch {
		return XXX, XXX
	}
	return e.a, e.b
}

// MarshalJSON implements the [json.Marshaler] interface.
// The three cases are encoded as:
//
//	"Unknown"
//	{"Mismatch":["EUR","USD"]}
//	"DivideByZero"
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (e Error) MarshalJSON() ([]byte, error) {
	switch e.code {
	case codeMismatch:
		text := make([]byte, 0, 32)
		text = append(text, `{"Mismatch":["`...)
		text = append(text, e.a.Code()...)
		text = append(text, `","`...)
		text = append(text, e.b.Code()...)
		text = append(text, `"]}`...)
		return text, nil
	case codeDivideByZero:
		return []byte(`"DivideByZero"`), nil
	default:
		return []byte(`"Unknown"`), nil
	}
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts the encodings produced by [Error.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (e *Error) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	switch {
	case len(text) > 0 && text[0] == '"':
		var tag string
		if err := json.Unmarshal(text, &tag); err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Error{}, err)
		}
		switch tag {
		case "Unknown":
			*e = Error{code: codeUnknown}
		case "DivideByZero":
			*e = Error{code: codeDivideByZero}
		default:
			return fmt.Errorf("unmarshaling %T: invalid case %q", Error{}, tag)
		}
	case len(text) > 0 && text[0] == '{':
		var obj struct {
			Mismatch *[2]string
		}
		if err := json.Unmarshal(text, &obj); err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Error{}, err)
		}
		if obj.Mismatch == nil {
			return fmt.Errorf("unmarshaling %T: invalid case", Error{})
		}
		a, err := ParseCurr(obj.Mismatch[0])
		if err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Error{}, err)
		}
		b, err := ParseCurr(obj.Mismatch[1])
		if err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Error{}, err)
		}
		*e = Error{code: codeMismatch, a: a, b: b}
	default:
		return fmt.Errorf("unmarshaling %T: invalid input", Error{})
	}
	return nil
}
