package money

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

// Result is the outcome of monetary arithmetic: either an [Amount] or the
// [Error] explaining why no amount exists.
// The zero value is the unknown currency error, so a zero Result is ready
// to use as the accumulator of a reduction.
// Result is designed to be safe for concurrent use by multiple goroutines.
//
// Results stay results under arithmetic: every operation defined on an
// amount is also defined on a result, coalescing errors instead of
// aborting, so a chain of operations can be written without intermediate
// checks and inspected once at the end:
//
//	two := decimal.MustParse("2")
//	a := money.MustParseAmount("USD", "99.95")
//	b := money.MustParseAmount("USD", "4.05")
//	r := a.Add(b).Quo(two)
//	fmt.Println(r) // $ 52.00
//
// The == operator compares results structurally, like amounts; use
// [Result.Equal] for equality that disregards trailing zeros.
type Result struct {
	amount Amount
	err    Error
	ok     bool
}

// Ok returns a successful result wrapping the given amount.
func Ok(a Amount) Result {
	return Result{amount: a, ok: true}
}

// Unknown returns a failed result wrapping the unknown currency error.
// Unknown is the identity of addition and subtraction: combining it with
// any result returns that result unchanged, or negated for subtraction.
// See also method [Result.IsUnknown].
func Unknown() Result {
	return Result{}
}

// Mismatch returns a failed result wrapping a currency mismatch error
// between currencies a and b.
// See also method [Result.IsMismatch].
func Mismatch(a, b Currency) Result {
	return Result{err: Error{code: codeMismatch, a: a, b: b}}
}

// DivideByZero returns a failed result wrapping a division by zero error.
// See also method [Result.IsDivideByZero].
func DivideByZero() Result {
	return Result{err: Error{code: codeDivideByZero}}
}

// IsOK reports whether the result holds an amount.
// See also methods [Result.Amount], [Result.Err].
func (r Result) IsOK() bool {
	return r.ok
}

// IsUnknown reports whether the result is the unknown currency error.
func (r Result) IsUnknown() bool {
	return !r.ok && r.err.IsUnknown()
}

// IsMismatch reports whether the result is a currency mismatch error.
func (r Result) IsMismatch() bool {
	return !r.ok && r.err.IsMismatch()
}

// IsDivideByZero reports whether the result is a division by zero error.
func (r Result) IsDivideByZero() bool {
	return !r.ok && r.err.IsDivideByZero()
}

// Amount returns the wrapped amount.
// If the result is a failure, Amount returns the zero amount and the
// wrapped error, so the outcome of a chain can be propagated the ordinary
// Go way:
//
//	a, err := r.Amount()
//	if err != nil {
//		return err
//	}
func (r Result) Amount() (Amount, error) {
	if !r.ok {
		return Amount{}, r.err
	}
	return r.amount, nil
}

// Err returns the wrapped error, or nil if the result holds an amount.
// The returned error unwraps to an [Error] with [errors.As].
func (r Result) Err() error {
	if !r.ok {
		return r.err
	}
	return nil
}

// AddResult returns the sum of results r and q, coalescing errors:
//
//   - a non-unknown error operand is the sum, with the error of r taking
//     precedence over the error of q;
//   - the unknown currency error is the identity: Unknown + q is q, and
//     r + Unknown is r;
//   - two amounts in different currencies yield a currency mismatch
//     carrying the currency of r first;
//   - two amounts in the same currency yield their sum.
//
// See also methods [Amount.Add] and [Result.Add].
//
// AddResult panics if the integer part of the sum has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (r Result) AddResult(q Result) Result {
	if !r.ok {
		if !r.err.IsUnknown() {
			return r
		}
		return q
	}
	if !q.ok {
		if !q.err.IsUnknown() {
			return q
		}
		return r
	}
	a, b := r.amount, q.amount
	if !a.SameCurr(b) {
		return Mismatch(a.curr, b.curr)
	}
	d, err := a.value.Add(b.value)
	if err != nil {
		panic(fmt.Sprintf("computing [%v + %v]: %v", a, b, err))
	}
	return Ok(NewAmount(a.curr, d))
}

// SubResult returns the difference between results r and q, coalescing
// errors with the same rules as [Result.AddResult]; as the identity of
// subtraction, Unknown - q is the negation of q.
// See also methods [Amount.Sub] and [Result.Sub].
//
// SubResult panics if the integer part of the difference has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (r Result) SubResult(q Result) Result {
	if !r.ok {
		if !r.err.IsUnknown() {
			return r
		}
		return q.Neg()
	}
	if !q.ok {
		if !q.err.IsUnknown() {
			return q
		}
		return r
	}
	a, b := r.amount, q.amount
	if !a.SameCurr(b) {
		return Mismatch(a.curr, b.curr)
	}
	d, err := a.value.Sub(b.value)
	if err != nil {
		panic(fmt.Sprintf("computing [%v - %v]: %v", a, b, err))
	}
	return Ok(NewAmount(a.curr, d))
}

// Add returns the sum of result r and amount b.
// See also method [Result.AddResult].
func (r Result) Add(b Amount) Result {
	return r.AddResult(Ok(b))
}

// Sub returns the difference between result r and amount b.
// See also method [Result.SubResult].
func (r Result) Sub(b Amount) Result {
	return r.SubResult(Ok(b))
}

// Neg returns the result with the sign of the wrapped amount flipped.
// Failed results are returned unchanged, including the unknown currency
// error.
func (r Result) Neg() Result {
	if !r.ok {
		return r
	}
	return Ok(r.amount.Neg())
}

// Abs returns the result with the absolute value of the wrapped amount.
// Failed results are returned unchanged.
func (r Result) Abs() Result {
	if !r.ok {
		return r
	}
	return Ok(r.amount.Abs())
}

// Mul returns the result with the wrapped amount multiplied by factor e.
// Failed results are returned unchanged.
// See also method [Amount.Mul].
//
// Mul panics if the integer part of the product has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (r Result) Mul(e decimal.Decimal) Result {
	if !r.ok {
		return r
	}
	return Ok(r.amount.Mul(e))
}

// Quo returns the result with the wrapped amount divided by divisor e.
// An earlier mismatch or division by zero is returned unchanged; otherwise
// a zero divisor yields a division by zero, even when the result was the
// unknown currency error.
// See also method [Amount.Quo].
//
// Quo panics if the integer part of the quotient has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (r Result) Quo(e decimal.Decimal) Result {
	if !r.ok && !r.err.IsUnknown() {
		return r
	}
	if e.IsZero() {
		return DivideByZero()
	}
	if !r.ok {
		return r
	}
	return r.amount.Quo(e)
}

// ConvertedTo returns the result with the wrapped amount exchanged into
// the given quote currency at the given rate.
// Failed results are returned unchanged.
// See also methods [Amount.ConvertedTo] and [ExchangeRate.Conv].
//
// ConvertedTo panics if the integer part of the converted amount has more
// than [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (r Result) ConvertedTo(quote Currency, rate decimal.Decimal) Result {
	if !r.ok {
		return r
	}
	return Ok(r.amount.ConvertedTo(quote, rate))
}

// Equal reports whether two results are equal: two successes holding
// amounts that are equal per [Amount.Equal], or two failures holding the
// same error.
// Comparisons against a bare amount or a bare error are expressed by
// lifting the operand:
//
//	r.Equal(money.Ok(a))
//	r.Equal(money.Mismatch(money.EUR, money.USD))
func (r Result) Equal(q Result) bool {
	if r.ok != q.ok {
		return false
	}
	if !r.ok {
		return r.err == q.err
	}
	return r.amount.Equal(q.amount)
}

// String implements the [fmt.Stringer] interface.
// A successful result renders as its amount, a failed result as its error
// message.
// See also methods [Amount.String] and [Error.Error].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Result) String() string {
	if !r.ok {
		return r.err.Error()
	}
	return r.amount.String()
}

// Format implements the [fmt.Formatter] interface.
// A successful result accepts the same verbs, flags, and precision as
// [Amount.Format].
// A failed result writes the error message for every verb, quoted for %q.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Result) Format(state fmt.State, verb rune) {
	if r.ok {
		r.amount.Format(state, verb)
		return
	}

	text := r.err.Error()
	if verb == 'q' {
		text = strconv.Quote(text)
	}
	buf := []byte(text)

	// Padding
	if w, ok := state.Width(); ok && w > len(buf) {
		pad := make([]byte, w-len(buf))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			buf = append(buf, pad...)
		} else {
			buf = append(pad, buf...)
		}
	}

	//nolint:errcheck
	state.Write(buf)
}

// Sum returns the sum of the given amounts, combining them left to right
// with the rules of [Result.AddResult].
// The sum of no amounts is [Unknown], and the first currency mismatch
// poisons the rest of the reduction:
//
//	Sum()           // unknown currency
//	Sum(usd1)       // $ 1.00
//	Sum(usd1, eur1) // mismatch currency 'USD' and 'EUR'
//
// Sum panics if the integer part of an intermediate sum has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func Sum(amounts ...Amount) Result {
	r := Unknown()
	for _, a := range amounts {
		r = r.Add(a)
	}
	return r
}

// SumResults returns the sum of the given results, combining them left to
// right with the rules of [Result.AddResult].
// The sum of no results is [Unknown].
// See also function [Sum].
//
// SumResults panics if the integer part of an intermediate sum has more
// than [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func SumResults(results ...Result) Result {
	r := Unknown()
	for _, q := range results {
		r = r.AddResult(q)
	}
	return r
}
