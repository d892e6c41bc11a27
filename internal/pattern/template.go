package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrTemplate is the base error for every malformed template. Callers map it
// to the template-error exit class with errors.Is.
var ErrTemplate = errors.New("invalid template")

// placeholderRE recognizes the numeric placeholder inside a template string:
// "%d", "%0<W>d" (zero-padded) or "%<W>d" (space-padded).
var placeholderRE = regexp.MustCompile(`%(0?)([0-9]*)d`)

// Number is a compiled single-number filename template.
//
// It captures the literal prefix and suffix around the placeholder, plus the
// width policy of the number itself:
//
//   - width == 0: unbounded, one or more digits, no padding check
//   - width > 0, zero-padded: exactly width digits
//   - width > 0, space-padded: exactly width characters, leading positions
//     may be spaces, the last one must be a digit
//
// A Number both formats values into names and matches names back into
// values. The matcher is strict: the whole candidate string must match, and
// the digit-count policy is enforced exactly.
type Number struct {
	prefix     string
	suffix     string
	zeroPadded bool
	width      int // 0 = unbounded
	re         *regexp.Regexp
}

// ParseNumber compiles a template string into a Number.
//
// The template must contain exactly one placeholder. A placeholder that
// requests a fixed width of zero digits ("%0d") can never format or match
// anything and is rejected. All returned errors wrap [ErrTemplate].
func ParseNumber(tpl string) (*Number, error) {
	locs := placeholderRE.FindAllStringSubmatchIndex(tpl, -1)
	switch len(locs) {
	case 0:
		return nil, fmt.Errorf("%w: no numeric placeholder in %q", ErrTemplate, tpl)
	case 1:
		// ok
	default:
		return nil, fmt.Errorf("%w: more than one placeholder in %q", ErrTemplate, tpl)
	}

	loc := locs[0]
	zero := tpl[loc[2]:loc[3]] == "0"
	widthTxt := tpl[loc[4]:loc[5]]

	width := 0
	if widthTxt != "" {
		w, err := strconv.Atoi(widthTxt)
		if err != nil {
			return nil, fmt.Errorf("%w: bad width in %q", ErrTemplate, tpl)
		}
		width = w
	}
	if zero && width == 0 {
		return nil, fmt.Errorf("%w: zero-width placeholder in %q", ErrTemplate, tpl)
	}

	n := &Number{
		prefix:     tpl[:loc[0]],
		suffix:     tpl[loc[1]:],
		zeroPadded: zero && width > 0,
		width:      width,
	}
	n.re = regexp.MustCompile(
		"^" + regexp.QuoteMeta(n.prefix) + "(" + n.digits() + ")" + regexp.QuoteMeta(n.suffix) + "$",
	)
	return n, nil
}

// digits returns the regex fragment matching the numeric part under this
// Number's width policy.
func (n *Number) digits() string {
	switch {
	case n.width == 0:
		return `[0-9]+`
	case n.zeroPadded:
		return fmt.Sprintf(`[0-9]{%d}`, n.width)
	case n.width == 1:
		return `[0-9]`
	default:
		// Space padding: any leading position may be a blank, the final
		// digit is mandatory.
		return fmt.Sprintf(`[ 0-9]{%d}[0-9]`, n.width-1)
	}
}

// Format renders the number into a name according to the width policy.
func (n *Number) Format(v int) string {
	var num string
	switch {
	case n.width == 0:
		num = strconv.Itoa(v)
	case n.zeroPadded:
		num = fmt.Sprintf("%0*d", n.width, v)
	default:
		num = fmt.Sprintf("%*d", n.width, v)
	}
	return n.prefix + num + n.suffix
}

// Match reports whether name matches this template, and if so the numeric
// value it carries. Leading zeros and spaces are normalized away.
func (n *Number) Match(name string) (int, bool) {
	m := n.re.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(m[1]))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Glob returns a cheap wildcard probe ("prefix*suffix") that any matching
// name also satisfies. It is used to narrow directory listings before the
// strict regex check.
func (n *Number) Glob() string {
	return globEscape(n.prefix) + "*" + globEscape(n.suffix)
}

// Prefix returns the literal before the placeholder.
func (n *Number) Prefix() string { return n.prefix }

// Suffix returns the literal after the placeholder.
func (n *Number) Suffix() string { return n.suffix }

// Width returns the fixed width, or 0 when unbounded.
func (n *Number) Width() int { return n.width }

// ZeroPadded reports whether the fixed width is filled with zeros.
func (n *Number) ZeroPadded() bool { return n.zeroPadded }

// Fixed reports whether the number occupies an exact character count, which
// is what makes boundaries recoverable inside spread templates.
func (n *Number) Fixed() bool { return n.width > 0 }

func (n *Number) String() string {
	var ph string
	switch {
	case n.width == 0:
		ph = "%d"
	case n.zeroPadded:
		ph = fmt.Sprintf("%%0%dd", n.width)
	default:
		ph = fmt.Sprintf("%%%dd", n.width)
	}
	return n.prefix + ph + n.suffix
}

// globEscape neutralizes filepath.Match metacharacters in a literal.
func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
