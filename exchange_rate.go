package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two
// currencies.
// The zero value corresponds to the rate "XXX/XXX 0", where [XXX] indicates
// an unknown currency; converting with it does not panic but yields a
// failed [Result].
// ExchangeRate is designed to be safe for concurrent use by multiple
// goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // units of quote currency per unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote
// currencies.
// The rate keeps the scale it was constructed with; it is not rescaled to
// the scales of its currencies.
//
// NewExchRate returns an error if the rate is not positive, or if the
// currencies are identical and the rate is not equal to 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("exchange rate between identical currencies must be equal to 1")
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also function [ParseCurr] and method [decimal.Parse].
//
// [decimal.Parse]: https://pkg.go.dev/github.com/govalues/decimal#Parse
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote currency: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("constructing rate: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings
// cannot be parsed.
// It simplifies safe initialization of global variables holding exchange
// rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base
// currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the decimal representation of the rate.
// It is how many units of the quote currency one unit of the base currency
// buys.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// IsZero returns:
//
//	true  if r == 0
//	false otherwise
func (r ExchangeRate) IsZero() bool {
	return r.value.IsZero()
}

// IsOne returns:
//
//	true  if r == 1
//	false otherwise
func (r ExchangeRate) IsOne() bool {
	return r.value.IsOne()
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
// See also methods [ExchangeRate.Base] and [ExchangeRate.Quote].
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.base == r.base && q.quote == r.quote
}

// CanConv returns true if [ExchangeRate.Conv] would convert the given
// amount to a successful result.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr() == r.base &&
		r.base != XXX &&
		r.quote != XXX &&
		r.value.IsPos()
}

// Conv returns a result with the amount converted from the base currency of
// the exchange rate to its quote currency.
// If the amount is denominated in a currency other than the base currency,
// the result is a currency mismatch carrying the currency of the amount
// first.
// If either currency of the exchange rate is [XXX] or the rate is not
// positive, the result is the unknown currency error.
// See also methods [ExchangeRate.CanConv] and [Amount.ConvertedTo].
//
// Conv panics if the integer part of the converted amount has more than
// [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (r ExchangeRate) Conv(b Amount) Result {
	if b.Curr() != r.base {
		return Mismatch(b.Curr(), r.base)
	}
	if !r.CanConv(b) {
		return Unknown()
	}
	return Ok(b.ConvertedTo(r.quote, r.value))
}

// Inv returns the inverse of the exchange rate: the rate from the quote
// currency back to the base currency.
//
// Inv returns an error if the rate is zero, or if the integer part of the
// inverse has more than [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d := r.value
	if d.IsZero() {
		return ExchangeRate{}, fmt.Errorf("inverting %v: zero rate does not have an inverse", r)
	}
	one := d.One()
	f, err := one.Quo(d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.quote, r.base, f)
}

// Mul returns an exchange rate with the same base and quote currencies, but
// with the rate multiplied by a positive factor e.
// It can be used to include a commission or spread in the rate.
//
// Mul returns an error if the factor is not positive, or if the integer
// part of the product has more than [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#pkg-constants
func (r ExchangeRate) Mul(e decimal.Decimal) (ExchangeRate, error) {
	if !e.IsPos() {
		return ExchangeRate{}, fmt.Errorf("multiplying %v: factor must be positive", r)
	}
	d, err := r.value.Mul(e)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("multiplying %v: %w", r, err)
	}
	return NewExchRate(r.base, r.quote, d)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate: the currency pair and the rate at
// its actual scale.
// See also methods [Currency.Code] and [Amount.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.base.Code() + "/" + r.quote.Code() + " " + r.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example        | Description            |
//	| ------ | -------------- | ---------------------- |
//	| %s, %v | EUR/USD 1.25   | Currency pair and rate |
//	| %q     | "EUR/USD 1.25" | Quoted pair and rate   |
//	| %f     | 1.25           | Rate                   |
//	| %c     | EUR/USD        | Currency pair          |
//
// The '-' format flag can be used with all verbs.
// The '0' format flag can be used with all verbs except %c.
//
// Precision is supported for the %s, %v, %q, and %f verbs and sets the
// number of digits shown after the decimal point.
// Digits beyond the precision are truncated, missing digits are zero-padded.
// The default precision is the actual scale of the rate.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//gocyclo:ignore
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	d := r.value

	// Rescaling
	tzeros := 0
	if verb != 'c' {
		scale := d.Scale()
		if p, ok := state.Precision(); ok {
			scale = p
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
	switch rprec := d.Prec(); verb {
	case 'c':
		// skip
	default:
		fracdigs = d.Scale()
		if rprec > fracdigs {
			intdigs = rprec - fracdigs
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

	// Currency pair and delimiter
	pair, pairsyms, pairdel := "", 0, 0
	switch verb {
	case 'f':
		// skip
	case 'c':
		pair = r.base.Code() + "/" + r.quote.Code()
		pairsyms = len(pair)
	default:
		pair = r.base.Code() + "/" + r.quote.Code()
		pairsyms = len(pair)
		pairdel = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + pairsyms + pairdel + intdigs + dpoint + fracdigs + tzeros + tquote
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

	// Currency delimiter
	if pairdel > 0 {
		buf[pos] = ' '
		pos--
	}

	// Currency pair
	for i := pairsyms; i > 0; i-- {
		buf[pos] = pair[i-1]
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
	case 'q', 's', 'v', 'f', 'c':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(money.ExchangeRate="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
