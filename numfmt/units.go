package numfmt

import (
	"math"

	"github.com/goliatone/go-support/supporterrors"
)

// 2^63, the first magnitude an int64 cannot hold.
const int64Limit = float64(1 << 63)

// Byte multiples, base 1024. Results that do not fit an int64 are rejected
// with ErrInvalidArgument.
func Kilobytes(n float64) (int64, error) { return bytesOf("numfmt.Kilobytes", n, 1) }
func Megabytes(n float64) (int64, error) { return bytesOf("numfmt.Megabytes", n, 2) }
func Gigabytes(n float64) (int64, error) { return bytesOf("numfmt.Gigabytes", n, 3) }
func Terabytes(n float64) (int64, error) { return bytesOf("numfmt.Terabytes", n, 4) }
func Petabytes(n float64) (int64, error) { return bytesOf("numfmt.Petabytes", n, 5) }
func Exabytes(n float64) (int64, error)  { return bytesOf("numfmt.Exabytes", n, 6) }

func bytesOf(op string, n float64, power int) (int64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, supporterrors.InvalidArgument(op, "n", n, "must be finite")
	}
	total := n * math.Pow(storageBase, float64(power))
	if total >= int64Limit || total < -int64Limit {
		return 0, supporterrors.InvalidArgument(op, "n", n, "overflows int64")
	}
	return int64(total), nil
}

// MultipleOf reports whether n is a multiple of m. Zero is only a multiple
// of zero.
func MultipleOf(n, m int64) bool {
	if m == 0 {
		return n == 0
	}
	return n%m == 0
}
