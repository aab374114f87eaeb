package numfmt

import (
	"strconv"
	"strings"
)

// decimal is a non-negative decimal value 0.digits × 10^exp. An empty
// digits slice is zero.
type decimal struct {
	digits []byte
	exp    int
}

// newDecimal reads the shortest decimal representation of |f|, so 111.2345
// holds exactly the digits 1112345 rather than the binary approximation.
func newDecimal(f float64) decimal {
	if f < 0 {
		f = -f
	}
	if f == 0 {
		return decimal{}
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(exponent)

	digits := []byte(strings.Replace(mantissa, ".", "", 1))
	d := decimal{digits: digits, exp: exp + 1}
	d.trim()
	return d
}

func (d decimal) isZero() bool {
	return len(d.digits) == 0
}

// trim drops trailing zero digits; the value is unchanged.
func (d *decimal) trim() {
	n := len(d.digits)
	for n > 0 && d.digits[n-1] == '0' {
		n--
	}
	d.digits = d.digits[:n]
	if n == 0 {
		d.exp = 0
	}
}

// roundTo keeps n leading digits, rounding half up.
func (d decimal) roundTo(n int) decimal {
	if n >= len(d.digits) {
		return d
	}
	if n < 0 {
		return decimal{}
	}

	roundUp := d.digits[n] >= '5'
	out := decimal{digits: append([]byte(nil), d.digits[:n]...), exp: d.exp}
	if roundUp {
		i := n - 1
		for ; i >= 0; i-- {
			if out.digits[i] < '9' {
				out.digits[i]++
				break
			}
			out.digits[i] = '0'
		}
		if i < 0 {
			out.digits = append([]byte{'1'}, out.digits...)
			out.exp++
		}
	}
	out.trim()
	return out
}

// roundFraction rounds to the given number of fraction digits.
func (d decimal) roundFraction(places int) decimal {
	return d.roundTo(d.exp + places)
}

// roundSignificant rounds to the given number of significant digits.
func (d decimal) roundSignificant(digits int) decimal {
	return d.roundTo(digits)
}

// shift multiplies the value by 10^n.
func (d decimal) shift(n int) decimal {
	if d.isZero() {
		return d
	}
	d.exp += n
	return d
}

// parts renders the integer part and a fraction part of exactly places
// digits (places < 0 renders every digit).
func (d decimal) parts(places int) (string, string) {
	var integer, fraction strings.Builder

	if d.exp <= 0 {
		integer.WriteByte('0')
	} else {
		for i := 0; i < d.exp; i++ {
			if i < len(d.digits) {
				integer.WriteByte(d.digits[i])
			} else {
				integer.WriteByte('0')
			}
		}
	}

	var rest []byte
	if d.exp < 0 {
		rest = append([]byte(strings.Repeat("0", -d.exp)), d.digits...)
	} else if d.exp < len(d.digits) {
		rest = d.digits[d.exp:]
	}

	if places < 0 {
		fraction.Write(rest)
		return integer.String(), fraction.String()
	}
	for i := 0; i < places; i++ {
		if i < len(rest) {
			fraction.WriteByte(rest[i])
		} else {
			fraction.WriteByte('0')
		}
	}
	return integer.String(), fraction.String()
}
