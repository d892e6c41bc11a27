package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Spread is a compiled two-number filename template for double pages: a
// single image file that spans two consecutive page numbers, such as
// "042-043.jpg".
//
// The shape is prefix + N1 + middle + N2 + suffix. The two numeric slots
// keep their own width policies. When middle is empty the boundary between
// the numbers is only recoverable if both widths are fixed; that is
// enforced at construction.
//
// The first/second arguments and results of Format and Match are always
// the logical page numbers (first < second). In reversed mode the second
// number is printed before the first, as some collections name spreads
// "043-042" in right-to-left reading order.
type Spread struct {
	prefix   string
	middle   string
	suffix   string
	first    *Number
	second   *Number
	reversed bool
	re       *regexp.Regexp
}

// ParseSpread compiles an explicit two-placeholder template such as
// "%03d-%03d" or "p%02dx%02d_hq". Errors wrap [ErrTemplate].
func ParseSpread(tpl string, reversed bool) (*Spread, error) {
	locs := placeholderRE.FindAllStringSubmatchIndex(tpl, -1)
	if len(locs) != 2 {
		return nil, fmt.Errorf("%w: spread template %q needs exactly two placeholders, has %d",
			ErrTemplate, tpl, len(locs))
	}

	a, err := bareNumber(tpl[locs[0][2]:locs[0][3]] == "0", tpl[locs[0][4]:locs[0][5]], tpl)
	if err != nil {
		return nil, err
	}
	b, err := bareNumber(tpl[locs[1][2]:locs[1][3]] == "0", tpl[locs[1][4]:locs[1][5]], tpl)
	if err != nil {
		return nil, err
	}

	return newSpread(tpl[:locs[0][0]], tpl[locs[0][1]:locs[1][0]], tpl[locs[1][1]:], a, b, reversed)
}

// Derive builds a Spread from a single-number template and a join literal:
// the single's prefix and suffix are kept and the join is spliced between
// the two numbers. The second slot reuses the single's width policy unless
// second is non-nil, in which case only that template's numeric policy is
// taken. Errors wrap [ErrTemplate].
func Derive(single *Number, join string, second *Number, reversed bool) (*Spread, error) {
	a := &Number{zeroPadded: single.zeroPadded, width: single.width}
	b := a
	if second != nil {
		b = &Number{zeroPadded: second.zeroPadded, width: second.width}
	}
	return newSpread(single.prefix, join, single.suffix, a, b, reversed)
}

func newSpread(prefix, middle, suffix string, a, b *Number, reversed bool) (*Spread, error) {
	if middle == "" && !(a.Fixed() && b.Fixed()) {
		return nil, fmt.Errorf("%w: spread with empty separator needs fixed widths on both numbers",
			ErrTemplate)
	}

	s := &Spread{
		prefix:   prefix,
		middle:   middle,
		suffix:   suffix,
		first:    a,
		second:   b,
		reversed: reversed,
	}

	left, right := a, b
	if reversed {
		left, right = b, a
	}
	s.re = regexp.MustCompile(
		"^" + regexp.QuoteMeta(prefix) +
			"(" + left.digits() + ")" + regexp.QuoteMeta(middle) +
			"(" + right.digits() + ")" + regexp.QuoteMeta(suffix) + "$",
	)
	return s, nil
}

// bareNumber builds a prefix-less Number from placeholder pieces.
func bareNumber(zero bool, widthTxt, tpl string) (*Number, error) {
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
	return &Number{zeroPadded: zero && width > 0, width: width}, nil
}

// Format renders the spread name for the logical pair (first, second).
// It does not check adjacency; callers only ever pass consecutive numbers.
func (s *Spread) Format(first, second int) string {
	a := s.first.Format(first)
	b := s.second.Format(second)
	if s.reversed {
		a, b = b, a
	}
	return s.prefix + a + s.middle + b + s.suffix
}

// Match reports whether name matches this spread template and returns the
// logical (first, second) pair. Adjacency of the pair is the caller's
// concern: a positional match with second != first+1 must be treated as a
// broken double page, not skipped.
func (s *Spread) Match(name string) (first, second int, ok bool) {
	m := s.re.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(m[1]))
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(m[2]))
	if err != nil {
		return 0, 0, false
	}
	if s.reversed {
		x, y = y, x
	}
	return x, y, true
}

// Glob returns the wildcard probe covering every name this template can
// match.
func (s *Spread) Glob() string {
	return globEscape(s.prefix) + "*" + globEscape(s.suffix)
}

// Reversed reports whether the second number prints before the first.
func (s *Spread) Reversed() bool { return s.reversed }

func (s *Spread) String() string {
	a, b := s.first.String(), s.second.String()
	if s.reversed {
		a, b = b, a
	}
	return s.prefix + a + s.middle + b + s.suffix
}
