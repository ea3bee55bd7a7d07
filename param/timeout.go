package param

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidTimeout is wrapped by [TimeoutError] when a literal does not
// match the timeout grammar.
var ErrInvalidTimeout = errors.New("invalid timeout format")

// TimeoutError reports the literal that failed to parse.
type TimeoutError struct {
	Literal string
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Literal)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// timeoutPattern accepts digits followed by an optional unit. A literal
// without a unit is already a count of milliseconds.
var timeoutPattern = regexp.MustCompile(`^(\d+)(ms|s|m|h|H|d|w)?$`)

var timeoutUnits = map[string]int64{
	"":   1,
	"ms": 1,
	"s":  1000,
	"m":  60 * 1000,
	"h":  60 * 60 * 1000,
	"H":  60 * 60 * 1000,
	"d":  24 * 60 * 60 * 1000,
	"w":  7 * 24 * 60 * 60 * 1000,
}

// Timeout is a millisecond precision duration sent to the server as a
// unit-less count of milliseconds.
type Timeout time.Duration

// Millis returns a Timeout of n milliseconds.
func Millis(n int64) Timeout {
	return Timeout(time.Duration(n) * time.Millisecond)
}

// ParseTimeout parses literals such as "10s", "2H" or "500". The unit is
// not retained: ParseTimeout("1m").String() is "60000".
func ParseTimeout(s string) (Timeout, error) {
	m := timeoutPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &TimeoutError{Literal: s, Err: ErrInvalidTimeout}
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, &TimeoutError{Literal: s, Err: fmt.Errorf("%w: %w", ErrInvalidTimeout, err)}
	}

	mult := timeoutUnits[m[2]]
	if n > math.MaxInt64/int64(time.Millisecond)/mult {
		return 0, &TimeoutError{Literal: s, Err: fmt.Errorf("%w: value out of range", ErrInvalidTimeout)}
	}

	return Millis(n * mult), nil
}

// MustParseTimeout is like [ParseTimeout] but panics on error.
// It is intended for literals known at compile time.
func MustParseTimeout(s string) Timeout {
	t, err := ParseTimeout(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Duration returns t as a [time.Duration].
func (t Timeout) Duration() time.Duration {
	return time.Duration(t)
}

// Milliseconds returns t as a whole number of milliseconds.
func (t Timeout) Milliseconds() int64 {
	return time.Duration(t).Milliseconds()
}

// String returns the decimal millisecond count with no unit suffix.
func (t Timeout) String() string {
	return strconv.FormatInt(t.Milliseconds(), 10)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Timeout) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseTimeout].
func (t *Timeout) UnmarshalText(b []byte) error {
	v, err := ParseTimeout(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TimeoutParam returns a duration parameter for a [Timeout] value.
func TimeoutParam(name string, t Timeout) Param {
	return Duration(name, t.Duration())
}
