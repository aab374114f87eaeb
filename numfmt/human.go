package numfmt

import "math"

const storageBase = 1024

func formatHumanSize(number float64, spec Spec) string {
	units := spec.Units
	if len(units) == 0 {
		units = StorageUnits
	}

	sign := ""
	if number < 0 {
		sign, number = "-", -number
	}

	if number < storageBase {
		bytes := math.Trunc(number)
		unit := units[0]
		if bytes == 1 && unit == "Bytes" {
			unit = "Byte"
		}
		if bytes == 0 {
			sign = ""
		}
		return sign + applyFormat(spec.Format, round(newDecimal(bytes), Spec{Delimiter: spec.Delimiter}), unit)
	}

	// exponent keeps the mantissa in [1, 1024)
	exponent := 0
	mantissa := number
	for mantissa >= storageBase && exponent < len(units)-1 {
		mantissa /= storageBase
		exponent++
	}

	return sign + applyFormat(spec.Format, round(newDecimal(mantissa), spec), units[exponent])
}

func formatHumanCount(number float64, spec Spec) string {
	units := spec.Units
	if len(units) == 0 {
		units = CountUnits
	}

	sign := ""
	if number < 0 {
		sign = "-"
	}

	// round before picking the unit so 999999 reads "1 Million"
	d := newDecimal(number)
	if spec.Significant {
		d = d.roundSignificant(spec.Precision)
	} else {
		d = d.roundFraction(spec.Precision)
	}

	exponent := 0
	if !d.isZero() && d.exp > 1 {
		exponent = min((d.exp-1)/3, len(units)-1)
	}
	for exponent > 0 && units[exponent] == "" {
		exponent--
	}

	out := applyFormat(spec.Format, round(d.shift(-3*exponent), spec), units[exponent])
	if sign != "" && !isZeroString(out) {
		return sign + out
	}
	return out
}
