package core

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

type Kind int

const (
	IntegerKind Kind = iota
	FloatKind
	BoolKind
	TextKind
)

func (kind Kind) String() string {
	switch kind {
	case IntegerKind:
		return "integer"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case TextKind:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}

// Value is a scalar stored in a record. The zero Value is Integer(0).
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

func Integer(i int64) Value { return Value{kind: IntegerKind, i: i} }
func Float(f float64) Value { return Value{kind: FloatKind, f: f} }
func Bool(b bool) Value     { return Value{kind: BoolKind, b: b} }
func Text(s string) Value   { return Value{kind: TextKind, s: s} }

// Infer converts user-entered text into a Value. The order matters:
// integer, then float, then a case-insensitive boolean, then text.
// Spellings of NaN and infinity stay text since they cannot be saved, and
// so do hexadecimal floats.
func Infer(text string) Value {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Integer(i)
	}
	if !isHexFloat(text) {
		if f, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return Float(f)
		}
	}
	switch strings.ToLower(text) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return Text(text)
}

func isHexFloat(text string) bool {
	unsigned := strings.TrimLeft(text, "+-")
	return len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X')
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNumeric() bool {
	return v.kind == IntegerKind || v.kind == FloatKind
}

func (v Value) AsInteger() (int64, bool) { return v.i, v.kind == IntegerKind }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == FloatKind }
func (v Value) AsBool() (bool, bool)     { return v.b, v.kind == BoolKind }
func (v Value) AsText() (string, bool)   { return v.s, v.kind == TextKind }

// Equal reports structural equality. Values of different kinds are never
// equal, so Integer(5) and Float(5.0) differ.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case IntegerKind:
		return v.i == other.i
	case FloatKind:
		return v.f == other.f
	case BoolKind:
		return v.b == other.b
	case TextKind:
		return v.s == other.s
	}
	return false
}

// Compare orders two values. It returns -1, 0 or +1 and ok=true when the pair is
// comparable: both numeric, or both text. Every other pairing, and any NaN,
// yields ok=false.
func (v Value) Compare(other Value) (int, bool) {
	switch {
	case v.kind == TextKind && other.kind == TextKind:
		return strings.Compare(v.s, other.s), true
	case v.IsNumeric() && other.IsNumeric():
		return compareNumeric(v, other)
	}
	return 0, false
}

func compareNumeric(a, b Value) (int, bool) {
	if a.kind == IntegerKind && b.kind == IntegerKind {
		switch {
		case a.i < b.i:
			return -1, true
		case a.i > b.i:
			return 1, true
		}
		return 0, true
	}
	if (a.kind == FloatKind && math.IsNaN(a.f)) || (b.kind == FloatKind && math.IsNaN(b.f)) {
		return 0, false
	}
	if a.kind == FloatKind && b.kind == FloatKind {
		switch {
		case a.f < b.f:
			return -1, true
		case a.f > b.f:
			return 1, true
		}
		return 0, true
	}

	// Mixed integer/float: compare exactly, float64 cannot hold every int64.
	return a.bigFloat().Cmp(b.bigFloat()), true
}

func (v Value) bigFloat() *big.Float {
	if v.kind == IntegerKind {
		return new(big.Float).SetInt64(v.i)
	}
	return big.NewFloat(v.f)
}

// String returns the display form used by the shell and the SQL exporter.
func (v Value) String() string {
	switch v.kind {
	case IntegerKind:
		return strconv.FormatInt(v.i, 10)
	case FloatKind:
		return formatFloat(v.f)
	case BoolKind:
		return strconv.FormatBool(v.b)
	case TextKind:
		return v.s
	}
	return ""
}

// formatFloat keeps a fractional marker on integral floats so that 30.0
// never reads back as an integer. Plain decimal notation covers
// 1e-5 <= |f| < 1e16; everything else uses a bare exponent such as 1e16
// or 1.5e-7.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}

	// Shortest round-trip digits and their decimal exponent.
	scientific := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(scientific, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(exponent)
	point := exp + 1

	var b strings.Builder
	b.WriteString(sign)
	switch {
	case len(digits) <= point && point <= 16:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", point-len(digits)))
		b.WriteString(".0")
	case 0 < point && point <= 16:
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	case -5 < point && point <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -point))
		b.WriteString(digits)
	default:
		b.WriteString(digits[:1])
		if len(digits) > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		b.WriteString(strconv.Itoa(point - 1))
	}
	return b.String()
}

// GoString makes %#v output readable in test failures.
func (v Value) GoString() string {
	switch v.kind {
	case TextKind:
		return fmt.Sprintf("Text(%q)", v.s)
	case IntegerKind:
		return "Integer(" + v.String() + ")"
	case FloatKind:
		return "Float(" + v.String() + ")"
	case BoolKind:
		return "Bool(" + v.String() + ")"
	}
	return fmt.Sprintf("Value(%d)", int(v.kind))
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case IntegerKind:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case FloatKind:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("%w: cannot encode non-finite float %s", ErrInvalidInput, formatFloat(v.f))
		}
		return []byte(formatFloat(v.f)), nil
	case BoolKind:
		return []byte(strconv.FormatBool(v.b)), nil
	case TextKind:
		return json.Marshal(v.s)
	}
	return nil, fmt.Errorf("%w: unknown value kind %d", ErrInvalidInput, int(v.kind))
}

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return fmt.Errorf("%w: empty value", ErrDeserialization)
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
			return fmt.Errorf("%w: %v", ErrDeserialization, err)
		}
		*v = Text(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal([]byte(trimmed), &b); err != nil {
			return fmt.Errorf("%w: %v", ErrDeserialization, err)
		}
		*v = Bool(b)
		return nil
	case 'n', '[', '{':
		return fmt.Errorf("%w: unsupported value %s", ErrDeserialization, trimmed)
	}

	return v.parseNumber(trimmed)
}

func (v *Value) parseNumber(number string) error {
	if !strings.ContainsAny(number, ".eE") {
		if i, err := strconv.ParseInt(number, 10, 64); err == nil {
			*v = Integer(i)
			return nil
		}
	}
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid number %s", ErrDeserialization, number)
	}
	*v = Float(f)
	return nil
}
