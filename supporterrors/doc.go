// Package supporterrors defines the error taxonomy shared by the go-support
// packages.
//
// Every failure is reported synchronously by the call that detected it. The
// sentinels allow callers to branch with errors.Is, while the typed errors
// carry the offending operation and value for errors.As.
//
// # Error Categories
//
//   - ArgumentError: malformed input such as a negative truncation length,
//     an unsupported format mode or an out of range calendar offset
//   - InflectionError: a strict inflection found no exception, rule or
//     default suffix for a word
//
// # Usage with errors.Is
//
//	out, err := inflect.Truncate(text, -1)
//	if errors.Is(err, supporterrors.ErrInvalidArgument) {
//	    // reject the request
//	}
package supporterrors
