package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
	"unsafe"

	"github.com/govalues/decimal"
)

func TestAmount_ZeroValue(t *testing.T) {
	got := Amount{}
	want := MustParseAmount("XXX", "0")
	if got != want {
		t.Errorf("Amount{} = %q, want %q", got, want)
	}
	if s := got.String(); s != "¤ 0.00" {
		t.Errorf("Amount{}.String() = %q, want %q", s, "¤ 0.00")
	}
}

func TestAmount_Size(t *testing.T) {
	a := Amount{}
	got := unsafe.Sizeof(a)
	want := uintptr(24)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", a, got, want)
	}
}

func TestAmount_Interfaces(t *testing.T) {
	var i any = Amount{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
	_, ok = i.(json.Marshaler)
	if !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
}

func TestNewAmount(t *testing.T) {
	d := decimal.MustParse("1.2")
	got := NewAmount(USD, d)
	if got.Curr() != USD {
		t.Errorf("a.Curr() = %v, want %v", got.Curr(), USD)
	}
	if got.Decimal() != d {
		t.Errorf("a.Decimal() = %v, want %v", got.Decimal(), d)
	}
	// the value is not rescaled to the scale of the currency
	if got.Scale() != 1 {
		t.Errorf("a.Scale() = %v, want %v", got.Scale(), 1)
	}
}

func TestNewAmountFromMinorUnits(t *testing.T) {
	tests := []struct {
		m     string
		units int64
		want  string
	}{
		{"USD", 150, "1.50"},
		{"USD", -100, "-1.00"},
		{"USD", 0, "0.00"},
		{"USD", 1, "0.01"},
		{"JPY", 5, "5"},
		{"OMR", 5, "0.005"},
		{"CLF", 12345, "1.2345"},
	}
	for _, tt := range tests {
		got, err := NewAmountFromMinorUnits(MustParseCurr(tt.m), tt.units)
		if err != nil {
			t.Errorf("NewAmountFromMinorUnits(%v, %v) failed: %v", tt.m, tt.units, err)
			continue
		}
		want := MustParseAmount(tt.m, tt.want)
		if !got.Equal(want) {
			t.Errorf("NewAmountFromMinorUnits(%v, %v) = %q, want %q", tt.m, tt.units, got, want)
		}
	}
}

func TestNewAmountFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m    string
			f    float64
			want string
		}{
			{"USD", 1.5, "1.5"},
			{"USD", 0.1, "0.1"},
			{"USD", -2.3, "-2.3"},
			{"JPY", 100, "100"},
		}
		for _, tt := range tests {
			got, err := NewAmountFromFloat64(MustParseCurr(tt.m), tt.f)
			if err != nil {
				t.Errorf("NewAmountFromFloat64(%v, %v) failed: %v", tt.m, tt.f, err)
				continue
			}
			want := MustParseAmount(tt.m, tt.want)
			if !got.Equal(want) {
				t.Errorf("NewAmountFromFloat64(%v, %v) = %q, want %q", tt.m, tt.f, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []float64{
			math.NaN(),
			math.Inf(1),
			math.Inf(-1),
			1e300,
		}
		for _, tt := range tests {
			_, err := NewAmountFromFloat64(USD, tt)
			if err == nil {
				t.Errorf("NewAmountFromFloat64(USD, %v) did not fail", tt)
			}
		}
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			wantCurr     Currency
			wantScale    int
		}{
			{"USD", "1.2", USD, 1},
			{"usd", "1.20", USD, 2},
			{"840", "100", USD, 0},
			{"EUR", "-0.25", EUR, 2},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.curr, tt.amount)
			if err != nil {
				t.Errorf("ParseAmount(%q, %q) failed: %v", tt.curr, tt.amount, err)
				continue
			}
			if got.Curr() != tt.wantCurr {
				t.Errorf("ParseAmount(%q, %q).Curr() = %v, want %v", tt.curr, tt.amount, got.Curr(), tt.wantCurr)
			}
			if got.Scale() != tt.wantScale {
				t.Errorf("ParseAmount(%q, %q).Scale() = %v, want %v", tt.curr, tt.amount, got.Scale(), tt.wantScale)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			curr, amount string
		}{
			{"UUU", "1"},
			{"", "1"},
			{"USD", "abc"},
			{"USD", ""},
			{"USD", "1,5"},
		}
		for _, tt := range tests {
			_, err := ParseAmount(tt.curr, tt.amount)
			if err == nil {
				t.Errorf("ParseAmount(%q, %q) did not fail", tt.curr, tt.amount)
			}
		}
	})
}

func TestMustParseAmount(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseAmount(\"UUU\", \"1\") did not panic")
			}
		}()
		MustParseAmount("UUU", "1")
	})
}

func TestAmount_MinorUnits(t *testing.T) {
	tests := []struct {
		m, d      string
		wantUnits int64
		wantOk    bool
	}{
		// Different signs
		{"USD", "-1", -100, true},
		{"USD", "0", 0, true},
		{"USD", "1", 100, true},

		// Different scales
		{"JPY", "1", 1, true},
		{"JPY", "1.0", 1, true},
		{"USD", "1", 100, true},
		{"USD", "1.0", 100, true},
		{"USD", "1.00", 100, true},
		{"OMR", "1", 1000, true},
		{"OMR", "1.000", 1000, true},

		// Rounding
		{"USD", "1.554", 155, true},
		{"USD", "1.555", 156, true},
		{"USD", "1.565", 156, true},
		{"USD", "0.005", 0, true},

		// Minimal and maximal int64
		{"USD", "92233720368547758.07", math.MaxInt64, true},
		{"USD", "-92233720368547758.08", math.MinInt64, true},
		{"USD", "99999999999999999.99", 0, false},
		{"USD", "-99999999999999999.99", 0, false},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		gotUnits, gotOk := a.MinorUnits()
		if gotUnits != tt.wantUnits || gotOk != tt.wantOk {
			t.Errorf("%q.MinorUnits() = (%v, %v), want (%v, %v)", a, gotUnits, gotOk, tt.wantUnits, tt.wantOk)
		}
	}
}

func TestAmount_Float64(t *testing.T) {
	tests := []struct {
		m, d string
		want float64
	}{
		{"USD", "1.5", 1.5},
		{"USD", "-2.25", -2.25},
		{"JPY", "0", 0},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got, ok := a.Float64()
		if !ok {
			t.Errorf("%q.Float64() failed", a)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.Float64() = %v, want %v", a, got, tt.want)
		}
	}
}

func TestAmount_Sign(t *testing.T) {
	tests := []struct {
		m, d                 string
		sign                 int
		isNeg, isPos, isZero bool
	}{
		{"USD", "-1.00", -1, true, false, false},
		{"USD", "0", 0, false, false, true},
		{"USD", "1.00", 1, false, true, false},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		if got := a.Sign(); got != tt.sign {
			t.Errorf("%q.Sign() = %v, want %v", a, got, tt.sign)
		}
		if got := a.IsNeg(); got != tt.isNeg {
			t.Errorf("%q.IsNeg() = %v, want %v", a, got, tt.isNeg)
		}
		if got := a.IsPos(); got != tt.isPos {
			t.Errorf("%q.IsPos() = %v, want %v", a, got, tt.isPos)
		}
		if got := a.IsZero(); got != tt.isZero {
			t.Errorf("%q.IsZero() = %v, want %v", a, got, tt.isZero)
		}
	}
}

func TestAmount_Abs(t *testing.T) {
	tests := []struct {
		m, d, want string
	}{
		{"USD", "-5.67", "5.67"},
		{"USD", "5.67", "5.67"},
		{"USD", "0", "0"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := a.Abs()
		want := MustParseAmount(tt.m, tt.want)
		if got != want {
			t.Errorf("%q.Abs() = %q, want %q", a, got, want)
		}
	}
}

func TestAmount_Neg(t *testing.T) {
	tests := []struct {
		m, d, want string
	}{
		{"USD", "-5.67", "5.67"},
		{"USD", "5.67", "-5.67"},
		{"USD", "0", "0"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := a.Neg()
		want := MustParseAmount(tt.m, tt.want)
		if got != want {
			t.Errorf("%q.Neg() = %q, want %q", a, got, want)
		}
	}
}

func TestAmount_Round(t *testing.T) {
	tests := []struct {
		m, d  string
		scale int
		want  string
	}{
		{"USD", "1.555", 2, "1.56"},
		{"USD", "1.565", 2, "1.56"},
		{"USD", "1.554", 2, "1.55"},
		{"USD", "1.5", 3, "1.5"},
		{"JPY", "1.5", 0, "2"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := a.Round(tt.scale)
		want := MustParseAmount(tt.m, tt.want)
		if got != want {
			t.Errorf("%q.Round(%v) = %q, want %q", a, tt.scale, got, want)
		}
	}
}

func TestAmount_RoundToCurr(t *testing.T) {
	tests := []struct {
		m, d, want string
	}{
		{"USD", "1.555", "1.56"},
		{"JPY", "1.5", "2"},
		{"OMR", "1.5", "1.5"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := a.RoundToCurr()
		want := MustParseAmount(tt.m, tt.want)
		if got != want {
			t.Errorf("%q.RoundToCurr() = %q, want %q", a, got, want)
		}
	}
}

func TestAmount_Trunc(t *testing.T) {
	tests := []struct {
		m, d  string
		scale int
		want  string
	}{
		{"USD", "1.999", 2, "1.99"},
		{"USD", "-1.999", 2, "-1.99"},
		{"USD", "1.5", 3, "1.5"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := a.Trunc(tt.scale)
		want := MustParseAmount(tt.m, tt.want)
		if got != want {
			t.Errorf("%q.Trunc(%v) = %q, want %q", a, tt.scale, got, want)
		}
	}
}

func TestAmount_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, a, b, want string
		}{
			{"USD", "1.10", "2.30", "3.40"},
			{"USD", "1.1", "2.30", "3.40"},
			{"JPY", "100", "-250", "-150"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.a)
			b := MustParseAmount(tt.m, tt.b)
			got := a.Add(b)
			want := Ok(MustParseAmount(tt.m, tt.want))
			if !got.Equal(want) {
				t.Errorf("%q.Add(%q) = %v, want %v", a, b, got, want)
			}
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		eur := MustParseAmount("EUR", "1")
		usd := MustParseAmount("USD", "1")
		got := eur.Add(usd)
		if !got.Equal(Mismatch(EUR, USD)) {
			t.Errorf("%q.Add(%q) = %v, want %v", eur, usd, got, Mismatch(EUR, USD))
		}
		got = usd.Add(eur)
		if !got.Equal(Mismatch(USD, EUR)) {
			t.Errorf("%q.Add(%q) = %v, want %v", usd, eur, got, Mismatch(USD, EUR))
		}
	})
}

func TestAmount_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, a, b, want string
		}{
			{"USD", "3.40", "2.30", "1.10"},
			{"USD", "1.10", "2.30", "-1.20"},
			{"JPY", "100", "250", "-150"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.a)
			b := MustParseAmount(tt.m, tt.b)
			got := a.Sub(b)
			want := Ok(MustParseAmount(tt.m, tt.want))
			if !got.Equal(want) {
				t.Errorf("%q.Sub(%q) = %v, want %v", a, b, got, want)
			}
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		eur := MustParseAmount("EUR", "1")
		usd := MustParseAmount("USD", "1")
		got := eur.Sub(usd)
		if !got.Equal(Mismatch(EUR, USD)) {
			t.Errorf("%q.Sub(%q) = %v, want %v", eur, usd, got, Mismatch(EUR, USD))
		}
	})
}

func TestAmount_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, a, e, want string
		}{
			{"USD", "5.7", "3", "17.1"},
			{"USD", "1.10", "2", "2.20"},
			{"USD", "1.10", "0", "0"},
			{"JPY", "100", "0.5", "50"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.a)
			e := decimal.MustParse(tt.e)
			got := a.Mul(e)
			want := MustParseAmount(tt.m, tt.want)
			if !got.Equal(want) {
				t.Errorf("%q.Mul(%q) = %q, want %q", a, e, got, want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		a := MustParseAmount("USD", "9999999999999999999")
		e := decimal.MustParse("10")
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%q.Mul(%q) did not panic", a, e)
			}
		}()
		a.Mul(e)
	})
}

func TestAmount_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, a, e, want string
		}{
			{"USD", "7", "2", "3.5"},
			{"USD", "2", "3", "0.6666666666666666667"},
			{"USD", "-1", "3", "-0.3333333333333333333"},
			{"JPY", "100", "4", "25"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.a)
			e := decimal.MustParse(tt.e)
			got := a.Quo(e)
			want := Ok(MustParseAmount(tt.m, tt.want))
			if !got.Equal(want) {
				t.Errorf("%q.Quo(%q) = %v, want %v", a, e, got, want)
			}
		}
	})

	t.Run("zero divisor", func(t *testing.T) {
		a := MustParseAmount("USD", "1")
		got := a.Quo(decimal.MustParse("0"))
		if !got.IsDivideByZero() {
			t.Errorf("%q.Quo(0) = %v, want %v", a, got, DivideByZero())
		}
	})
}

func TestAmount_ConvertedTo(t *testing.T) {
	tests := []struct {
		m, a, quote, rate, want string
	}{
		{"USD", "10", "EUR", "0.9", "9"},
		{"USD", "10", "JPY", "110.5", "1105"},
		{"EUR", "2", "USD", "1.25", "2.50"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.a)
		quote := MustParseCurr(tt.quote)
		rate := decimal.MustParse(tt.rate)
		got := a.ConvertedTo(quote, rate)
		want := MustParseAmount(tt.quote, tt.want)
		if !got.Equal(want) {
			t.Errorf("%q.ConvertedTo(%v, %q) = %q, want %q", a, quote, rate, got, want)
		}
	}
}

func TestAmount_Split(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, d  string
			parts int
			want  []string
		}{
			{"USD", "1.01", 2, []string{"0.51", "0.50"}},
			{"USD", "-1.01", 2, []string{"-0.51", "-0.50"}},
			{"JPY", "101", 2, []string{"51", "50"}},
			{"USD", "0.01", 3, []string{"0.01", "0.00", "0.00"}},
			{"USD", "1", 2, []string{"0.5", "0.5"}},
			{"USD", "100.00", 3, []string{"33.34", "33.33", "33.33"}},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.d)
			got, err := a.Split(tt.parts)
			if err != nil {
				t.Errorf("%q.Split(%v) failed: %v", a, tt.parts, err)
				continue
			}
			want := make([]Amount, len(tt.want))
			for i, s := range tt.want {
				want[i] = MustParseAmount(tt.m, s)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%q.Split(%v) = %v, want %v", a, tt.parts, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParseAmount("USD", "1.01")
		for _, parts := range []int{0, -1} {
			_, err := a.Split(parts)
			if err == nil {
				t.Errorf("%q.Split(%v) did not fail", a, parts)
			}
		}
	})
}

func TestAmount_SameCurr(t *testing.T) {
	usd1 := MustParseAmount("USD", "1")
	usd2 := MustParseAmount("USD", "2")
	eur1 := MustParseAmount("EUR", "1")
	if !usd1.SameCurr(usd2) {
		t.Errorf("%q.SameCurr(%q) = false, want true", usd1, usd2)
	}
	if usd1.SameCurr(eur1) {
		t.Errorf("%q.SameCurr(%q) = true, want false", usd1, eur1)
	}
}

func TestAmount_Equal(t *testing.T) {
	tests := []struct {
		currA, a, currB, b string
		want               bool
	}{
		{"USD", "1.2", "USD", "1.20", true},
		{"USD", "1.2", "USD", "1.2", true},
		{"USD", "1.2", "USD", "1.25", false},
		{"USD", "1.2", "EUR", "1.2", false},
		{"JPY", "0", "JPY", "0.000", true},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.currA, tt.a)
		b := MustParseAmount(tt.currB, tt.b)
		got := a.Equal(b)
		if got != tt.want {
			t.Errorf("%q.Equal(%q) = %v, want %v", a, b, got, tt.want)
		}
	}
}

func TestAmount_Cmp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, a, b string
			want    int
		}{
			{"USD", "1.10", "2.30", -1},
			{"USD", "2.30", "1.10", 1},
			{"USD", "1.2", "1.20", 0},
			{"USD", "-1", "1", -1},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.a)
			b := MustParseAmount(tt.m, tt.b)
			got, err := a.Cmp(b)
			if err != nil {
				t.Errorf("%q.Cmp(%q) failed: %v", a, b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", a, b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		usd := MustParseAmount("USD", "1")
		eur := MustParseAmount("EUR", "1")
		_, err := usd.Cmp(eur)
		if err == nil {
			t.Fatalf("%q.Cmp(%q) did not fail", usd, eur)
		}
		var e Error
		if !errors.As(err, &e) {
			t.Fatalf("errors.As(%v, %T) = false, want true", err, &e)
		}
		if !e.IsMismatch() {
			t.Errorf("e.IsMismatch() = false, want true")
		}
		a, b := e.Currencies()
		if a != USD || b != EUR {
			t.Errorf("e.Currencies() = (%v, %v), want (USD, EUR)", a, b)
		}
	})
}

func TestAmount_Min(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, a, b, want string
		}{
			{"USD", "1.10", "2.30", "1.10"},
			{"USD", "2.30", "1.10", "1.10"},
			{"USD", "-1", "1", "-1"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.a)
			b := MustParseAmount(tt.m, tt.b)
			got, err := a.Min(b)
			if err != nil {
				t.Errorf("%q.Min(%q) failed: %v", a, b, err)
				continue
			}
			want := MustParseAmount(tt.m, tt.want)
			if got != want {
				t.Errorf("%q.Min(%q) = %q, want %q", a, b, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		usd := MustParseAmount("USD", "1")
		eur := MustParseAmount("EUR", "1")
		if _, err := usd.Min(eur); err == nil {
			t.Errorf("%q.Min(%q) did not fail", usd, eur)
		}
	})
}

func TestAmount_Max(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			m, a, b, want string
		}{
			{"USD", "1.10", "2.30", "2.30"},
			{"USD", "2.30", "1.10", "2.30"},
			{"USD", "-1", "1", "1"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.m, tt.a)
			b := MustParseAmount(tt.m, tt.b)
			got, err := a.Max(b)
			if err != nil {
				t.Errorf("%q.Max(%q) failed: %v", a, b, err)
				continue
			}
			want := MustParseAmount(tt.m, tt.want)
			if got != want {
				t.Errorf("%q.Max(%q) = %q, want %q", a, b, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		usd := MustParseAmount("USD", "1")
		eur := MustParseAmount("EUR", "1")
		if _, err := usd.Max(eur); err == nil {
			t.Errorf("%q.Max(%q) did not fail", usd, eur)
		}
	})
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		m, d, want string
	}{
		// Two digits after the decimal point, truncated
		{"USD", "1", "$ 1.00"},
		{"USD", "1.666666666666666667", "$ 1.66"},
		{"USD", "5.4", "$ 5.40"},
		{"USD", "0.005", "$ 0.00"},
		{"EUR", "2", "€ 2.00"},
		{"JPY", "100", "¥ 100.00"},

		// Negative
		{"USD", "-1.666", "$ -1.66"},

		// Symbol fallback
		{"OMR", "1.2345", "OMR 1.23"},
		{"MKD", "7", "ден 7.00"},
		{"XXX", "0", "¤ 0.00"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := a.String()
		if got != tt.want {
			t.Errorf("a.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAmount_Format(t *testing.T) {
	tests := []struct {
		m, d, format, want string
	}{
		// %T verb
		{"USD", "100.00", "%T", "money.Amount"},

		// %q verb
		{"USD", "5.67", "%q", "\"$ 5.67\""},
		{"USD", "5.678", "%q", "\"$ 5.67\""},
		{"USD", "5.67", "%10q", "  \"$ 5.67\""},
		{"USD", "5.67", "%-10q", "\"$ 5.67\"  "},

		// %s and %v verbs
		{"USD", "5.678", "%s", "$ 5.67"},
		{"USD", "5.6", "%s", "$ 5.60"},
		{"USD", "5", "%v", "$ 5.00"},
		{"USD", "-5.67", "%s", "$ -5.67"},
		{"EUR", "5.67", "%s", "€ 5.67"},
		{"USD", "5.67", "%10s", "    $ 5.67"},
		{"USD", "5.67", "%-10s", "$ 5.67    "},
		{"USD", "5.67", "%010s", "$ 00005.67"},
		{"USD", "5.67", "%+s", "$ +5.67"},
		{"USD", "5.67", "% s", "$  5.67"},

		// Precision
		{"USD", "5.678", "%.3s", "$ 5.678"},
		{"USD", "5.678", "%.1s", "$ 5.6"},
		{"USD", "5.678", "%.0s", "$ 5"},
		{"USD", "5.6", "%.3s", "$ 5.600"},

		// %f verb
		{"USD", "5.678", "%f", "5.678"},
		{"USD", "5.6", "%f", "5.6"},
		{"USD", "5", "%f", "5"},
		{"USD", "5.678", "%.2f", "5.67"},
		{"USD", "5.678", "%.5f", "5.67800"},
		{"JPY", "100", "%f", "100"},

		// %d verb
		{"USD", "15.6", "%d", "1560"},
		{"USD", "5.678", "%d", "568"},
		{"USD", "-5.67", "%d", "-567"},
		{"JPY", "100", "%d", "100"},
		{"OMR", "1.2", "%d", "1200"},

		// %c verb
		{"USD", "5.67", "%c", "USD"},
		{"USD", "5.67", "%5c", "  USD"},
		{"USD", "5.67", "%-5c", "USD  "},

		// wrong verbs
		{"USD", "5.67", "%b", "%!b(money.Amount=$ 5.67)"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got := fmt.Sprintf(tt.format, a)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %q) = %q, want %q", tt.format, a, got, tt.want)
		}
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	tests := []struct {
		m, d, want string
	}{
		{"USD", "1.25", `{"value":"1.25","currency":"USD"}`},
		{"USD", "1.2", `{"value":"1.2","currency":"USD"}`},
		{"EUR", "1", `{"value":"1","currency":"EUR"}`},
		{"JPY", "-100", `{"value":"-100","currency":"JPY"}`},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.m, tt.d)
		got, err := json.Marshal(a)
		if err != nil {
			t.Errorf("json.Marshal(%q) failed: %v", a, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%q) = %s, want %s", a, got, tt.want)
		}
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text, m, d string
		}{
			{`{"value":"1.25","currency":"USD"}`, "USD", "1.25"},
			{`{"currency":"EUR","value":"2.5"}`, "EUR", "2.5"},
			{`{"value":"-100","currency":"JPY"}`, "JPY", "-100"},
		}
		for _, tt := range tests {
			var got Amount
			err := json.Unmarshal([]byte(tt.text), &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%q) failed: %v", tt.text, err)
				continue
			}
			want := MustParseAmount(tt.m, tt.d)
			if got != want {
				t.Errorf("json.Unmarshal(%q) = %q, want %q", tt.text, got, want)
			}
		}
	})

	t.Run("null", func(t *testing.T) {
		got := MustParseAmount("USD", "1")
		if err := got.UnmarshalJSON([]byte("null")); err != nil {
			t.Errorf("UnmarshalJSON(\"null\") failed: %v", err)
		}
		want := MustParseAmount("USD", "1")
		if got != want {
			t.Errorf("UnmarshalJSON(\"null\") = %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			`{"value":"abc","currency":"USD"}`,
			`{"value":"1","currency":"UUU"}`,
			`{"value":"1"}`,
			`{"currency":"USD"}`,
			`{}`,
			`"1 USD"`,
			`[1,2]`,
		}
		for _, tt := range tests {
			var got Amount
			if err := json.Unmarshal([]byte(tt), &got); err == nil {
				t.Errorf("json.Unmarshal(%q) did not fail", tt)
			}
		}
	})
}
