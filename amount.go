package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// defaultScale is the number of digits shown after the decimal point by
// [Amount.String] and by [Amount.Format] when no precision is given.
const defaultScale = 2

// Amount represents an immutable monetary amount: an arbitrary-precision
// decimal value denominated in a single currency.
// Its zero value corresponds to "¤ 0.00", where [XXX] indicates an unknown
// currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
//
// Operations that combine two amounts, such as [Amount.Add], return a
// [Result] carrying either the computed amount or the reason none exists.
// Operations closed over a single currency, such as [Amount.Neg] and
// [Amount.Mul], return an Amount directly.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// NewAmount returns an amount with the given currency and value.
// The value keeps the scale it was constructed with; it is not rescaled
// to the scale of the currency.
// See also methods [Amount.Curr] and [Amount.Decimal].
func NewAmount(curr Currency, value decimal.Decimal) Amount {
	return Amount{curr: curr, value: value}
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if the scale of the currency is
// not supported by the decimal type.
func NewAmountFromMinorUnits(curr Currency, units int64) (Amount, error) {
	d, err := decimal.New(units, curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	return NewAmount(curr, d), nil
}

// NewAmountFromFloat64 converts a float to a (possibly rounded) amount.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func NewAmountFromFloat64(curr Currency, amount float64) (Amount, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v", amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	d, err := decimal.Parse(s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return NewAmount(curr, d), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// See also constructors [ParseCurr] and [decimal.Parse].
//
// [decimal.Parse]: https://pkg.go.dev/github.com/govalues/decimal#Parse
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmount(c, d), nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// MinorUnits returns a (possibly rounded) amount in minor units of currency
// (e.g. cents, pennies, fens).
// If the scale of the amount is greater than the scale of the currency, the
// fractional part is rounded using [rounding half to even] (banker's rounding).
// See also constructor [NewAmountFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) MinorUnits() (units int64, ok bool) {
	d := a.value.Rescale(a.curr.Scale())
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding half to even] (banker's rounding).
// See also constructor [NewAmountFromFloat64].
//
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Float64() (f float64, ok bool) {
	return a.value.Float64()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Scale returns the number of digits after the decimal point.
// See also method [Currency.Scale].
func (a Amount) Scale() int {
	return a.value.Scale()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return NewAmount(a.curr, a.value.Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return NewAmount(a.curr, a.value.Neg())
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using [rounding half to even] (banker's rounding).
// If the given scale is greater than the scale of the amount, the amount is
// returned unchanged.
// See also method [Amount.RoundToCurr].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Round(scale int) Amount {
	return NewAmount(a.curr, a.value.Round(scale))
}

// RoundToCurr returns an amount rounded to the scale of its currency
// using [rounding half to even] (banker's rounding).
// See also methods [Amount.Round], [Currency.Scale].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) RoundToCurr() Amount {
	return a.Round(a.curr.Scale())
}

// Trunc returns an amount truncated to the specified number of digits after
// the decimal point using [rounding toward zero].
// If the given scale is greater than the scale of the amount, the amount is
// returned unchanged.
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (a Amount) Trunc(scale int) Amount {
	return NewAmount(a.curr, a.value.Trunc(scale))
}

// Add returns the sum of amounts a and b.
// If the amounts are denominated in different currencies, the result is a
// currency mismatch carrying the currency of a first.
// See also methods [Result.Add] and [Result.AddResult].
//
// Add panics if the integer part of the result has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (a Amount) Add(b Amount) Result {
	return Ok(a).AddResult(Ok(b))
}

// Sub returns the difference between amounts a and b.
// If the amounts are denominated in different currencies, the result is a
// currency mismatch carrying the currency of a first.
// See also methods [Result.Sub] and [Result.SubResult].
//
// Sub panics if the integer part of the result has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (a Amount) Sub(b Amount) Result {
	return Ok(a).SubResult(Ok(b))
}

// Mul returns the product of amount a and factor e.
//
// Mul panics if the integer part of the result has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (a Amount) Mul(e decimal.Decimal) Amount {
	d, err := a.value.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("computing [%v * %v]: %v", a, e, err))
	}
	return NewAmount(a.curr, d)
}

// Quo returns the quotient of amount a and divisor e.
// If the divisor is zero, the result is a division by zero.
// See also method [Amount.Split].
//
// Quo panics if the integer part of the result has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (a Amount) Quo(e decimal.Decimal) Result {
	if e.IsZero() {
		return DivideByZero()
	}
	d, err := a.value.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("computing [%v / %v]: %v", a, e, err))
	}
	return Ok(NewAmount(a.curr, d))
}

// ConvertedTo returns the amount exchanged into the given quote currency at
// the given rate.
// The rate is applied as-is; use [ExchangeRate.Conv] for a rate that knows
// its base and quote currencies.
//
// ConvertedTo panics if the integer part of the result has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (a Amount) ConvertedTo(quote Currency, rate decimal.Decimal) Amount {
	d, err := a.value.Mul(rate)
	if err != nil {
		panic(fmt.Sprintf("computing [%v * %v]: %v", a, rate, err))
	}
	return NewAmount(quote, d)
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified
// number of parts, the remainder is distributed among the first parts of
// the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	// Parts
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}
	if !par.IsPos() {
		return nil, fmt.Errorf("number of parts must be positive")
	}

	// Quotient
	quo, err := a.value.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(max(a.Scale(), a.curr.Scale()))

	// Remainder
	prod, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err := a.value.Sub(prod)
	if err != nil {
		return nil, err
	}
	ulp := rem.ULP().CopySign(rem)

	// Remainder distribution
	res := make([]Amount, parts)
	for i := range res {
		d := quo
		if !rem.IsZero() {
			d, err = d.Add(ulp)
			if err != nil {
				return nil, err
			}
			rem, err = rem.Sub(ulp)
			if err != nil {
				return nil, err
			}
		}
		res[i] = NewAmount(a.curr, d)
	}
	return res, nil
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// Equal reports whether amounts a and b have the same currency and are
// numerically equal.
// Unlike the == operator, Equal disregards trailing zeros, so EUR 1.2 and
// EUR 1.20 are equal.
// Amounts in different currencies are never equal.
// See also method [Amount.Cmp].
func (a Amount) Equal(b Amount) bool {
	if !a.SameCurr(b) {
		return false
	}
	return a.value.Cmp(b.value) == 0
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Amounts in different currencies are not ordered: Cmp returns no ordering
// and an error that unwraps to a mismatch [Error].
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, Error{code: codeMismatch, a: a.curr, b: b.curr})
	}
	return a.value.Cmp(b.value), nil
}

// Min returns the smaller amount.
// See also method [Amount.Cmp].
//
// Min returns an error if amounts are denominated in different currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
// See also method [Amount.Cmp].
//
// Max returns an error if amounts are denominated in different currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount: the currency symbol, a space, and the value
// shown with exactly two digits after the decimal point.
// Digits beyond the second are truncated, not rounded, so "$ 1.666" renders
// as "$ 1.66".
// See also methods [Currency.Symbol], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	var buf [64]byte
	pos := len(buf) - 1
	d := a.value.Trunc(defaultScale)
	coef := d.Coef()

	// Trailing zeros
	for i := d.Scale(); i < defaultScale; i++ {
		buf[pos] = '0'
		pos--
	}

	// Fractional digits
	for i := 0; i < d.Scale(); i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Decimal point
	buf[pos] = '.'
	pos--

	// Integer digits
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if coef == 0 {
			break
		}
	}

	// Sign
	if d.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	// Delimiter
	buf[pos] = ' '
	pos--

	// Currency symbol
	symb := a.curr.Symbol()
	for i := len(symb) - 1; i >= 0; i-- {
		buf[pos] = symb[i]
		pos--
	}

	return string(buf[pos+1:])
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                  |
//	| ------ | ---------- | ---------------------------- |
//	| %s, %v | $ 5.67     | Currency symbol and amount   |
//	| %q     | "$ 5.67"   | Quoted symbol and amount     |
//	| %f     | 5.678      | Amount                       |
//	| %d     | 568        | Amount in minor units        |
//	| %c     | USD        | Currency code                |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is supported for the %s, %v, %q, and %f verbs and sets the
// number of digits shown after the decimal point.
// Digits beyond the precision are truncated, missing digits are zero-padded.
// The default precision is 2 for %s, %v, and %q, and the actual scale of
// the amount for %f.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//gocyclo:ignore
func (a Amount) Format(state fmt.State, verb rune) {
	c, d := a.curr, a.value

	// Rescaling
	tzeros := 0
	switch verb {
	case 'c':
		// skip
	case 'd':
		d = d.Rescale(c.Scale())
	default:
		scale := defaultScale
		switch p, ok := state.Precision(); {
		case ok:
			scale = p
		case verb == 'f':
			scale = d.Scale()
		}
		switch {
		case scale < d.Scale():
			d = d.Trunc(scale)
		case scale > d.Scale():
			tzeros = scale - d.Scale()
		}
	}

	// Integer and fractional digits
	intdigs, fracdigs := 0, 0
	switch aprec := d.Prec(); verb {
	case 'c':
		// skip
	case 'd':
		intdigs = aprec
		if d.IsZero() {
			intdigs++ // leading 0
		}
	default:
		fracdigs = d.Scale()
		if aprec > fracdigs {
			intdigs = aprec - fracdigs
		}
		if d.WithinOne() {
			intdigs++ // leading 0
		}
	}

	// Decimal point
	dpoint := 0
	if fracdigs > 0 || tzeros > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if verb != 'c' && (d.IsNeg() || state.Flag('+') || state.Flag(' ')) {
		rsign = 1
	}

	// Currency symbol and delimiter
	curr, currsyms, currdel := "", 0, 0
	switch verb {
	case 'f', 'd':
		// skip
	case 'c':
		curr = c.Code()
		currsyms = len(curr)
	default:
		curr = c.Symbol()
		currsyms = len(curr)
		currdel = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currsyms + currdel + rsign + intdigs + dpoint + fracdigs + tzeros + tquote
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c':
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Trailing zeros
	for i := 0; i < tzeros; i++ {
		buf[pos] = '0'
		pos--
	}

	// Fractional digits
	coef := d.Coef()
	for i := 0; i < fracdigs; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Decimal point
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}

	// Integer digits
	for i := 0; i < intdigs; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Leading zeros
	for i := 0; i < lzeros; i++ {
		buf[pos] = '0'
		pos--
	}

	// Arithmetic sign
	if rsign > 0 {
		if d.IsNeg() {
			buf[pos] = '-'
		} else if state.Flag(' ') {
			buf[pos] = ' '
		} else {
			buf[pos] = '+'
		}
		pos--
	}

	// Currency delimiter
	if currdel > 0 {
		buf[pos] = ' '
		pos--
	}

	// Currency symbol
	for i := currsyms; i > 0; i-- {
		buf[pos] = curr[i-1]
		pos--
	}

	// Opening quote
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 's', 'v', 'f', 'd', 'c':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(money.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded as a record of its decimal value and currency code:
//
//	{"value":"1.25","currency":"EUR"}
//
// The value keeps its exact decimal representation; it is not rescaled to
// the scale of the currency.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 48)
	text = append(text, `{"value":"`...)
	text = append(text, a.value.String()...)
	text = append(text, `","currency":"`...)
	text = append(text, a.curr.Code()...)
	text = append(text, `"}`...)
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts the encoding produced by [Amount.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var rec struct {
		Value    string `json:"value"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(text, &rec); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	b, err := ParseAmount(rec.Currency, rec.Value)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = b
	return nil
}
