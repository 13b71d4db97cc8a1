/*
Package money implements monetary amounts in various currencies and an
arithmetic over them that never loses an error.
It combines the [decimal] package's decimal floating-point values with a
[Currency] type representing ISO 4217 currencies.

# Features

  - Immutable amounts, results, and exchange rates, safe for concurrent use
  - Arithmetic that coalesces errors instead of aborting: operations on
    [Result] carry the first mismatch or division by zero through the whole
    computation
  - Support for ISO 4217 currencies with their codes, numeric codes, scales,
    symbols, and names
  - Conversion of monetary values using exchange rates
  - Splitting an amount into equal parts

# Representation

The package consists of three main types: Currency, Amount, and Result.
A Currency is an integer index into in-memory arrays holding the code,
numeric code, scale, symbol, and name of each ISO 4217 currency.
An Amount is a Currency and a [decimal.Decimal] value; the value keeps the
scale it was constructed with, and amounts compare numerically, so USD 1.2
and USD 1.20 are equal.
A Result is either an Amount or the [Error] explaining why no amount
exists.

# Error Coalescing

Operations that combine two monetary values can fail: adding amounts in
different currencies has no meaningful result, and dividing by zero has
none either. Instead of returning an error at every step, such operations
return a Result, and every operation is also defined on results, so the
failure travels through the rest of the computation and is inspected once:

	subtotal := money.Sum(items...)
	total := subtotal.Add(shipping).Quo(installments)
	a, err := total.Amount()

The coalescing rules are short: a mismatch or a division by zero is kept,
the error of the left operand taking precedence, and the unknown currency
error is transparent, which lets an empty reduction pick up the currency
of its first amount.

# Display

An amount renders as its currency symbol and its value with two digits
after the decimal point; extra digits are truncated, not rounded.
The [fmt] verbs %s, %v, %q, %f, %d, and %c with width, precision, and
flags give finer control.

# Errors

Parsing and construction report failures as ordinary Go errors.
Arithmetic reports mismatches and divisions by zero as values of type
[Error] wrapped in results, and panics only if a coefficient overflows
the underlying decimal type.
*/
package money
