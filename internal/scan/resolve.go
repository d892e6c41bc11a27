package scan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrIncrement is returned when the increment argument is neither a signed
// integer nor a solvable reference equation.
var ErrIncrement = errors.New("invalid increment")

// Auto is the sentinel accepted for ini/fin bounds resolved from the scan.
const Auto = "auto"

// Span is the resolved iteration plan for the first rename pass: walk from
// Ini to Fin inclusive in steps of Step, shifting every number by Delta.
//
// Ini and Fin come pre-flipped by direction safety: whenever following the
// user order would make a rename overtake a not-yet-processed source, the
// bounds are swapped so every write lands ahead of the remaining reads.
type Span struct {
	Ini   int
	Fin   int
	Delta int
	Step  int
}

// equationRE is the [ref]=target increment form. The reference may be
// "i"/"ini", "f"/"fin", an explicit number, or omitted (defaults to ini).
var equationRE = regexp.MustCompile(`^(ini|fin|i|f|[0-9]+)?=([+-]?[0-9]+)$`)

// Resolve turns the raw ini/fin/increment arguments into a Span. Bounds are
// either literal integers or [Auto], in which case the scan window is used;
// auto resolution with an empty scan fails with [ErrNoCandidates].
func Resolve(iniArg, finArg, deltaArg string, res *Result) (Span, error) {
	ini, err := resolveBound(iniArg, res.Window.Low, res.Found)
	if err != nil {
		return Span{}, fmt.Errorf("ini: %w", err)
	}
	fin, err := resolveBound(finArg, res.Window.High, res.Found)
	if err != nil {
		return Span{}, fmt.Errorf("fin: %w", err)
	}

	delta, err := ParseDelta(deltaArg, ini, fin)
	if err != nil {
		return Span{}, err
	}

	ini, fin = orient(ini, fin, delta)

	step := 1
	if fin < ini {
		step = -1
	}
	return Span{Ini: ini, Fin: fin, Delta: delta, Step: step}, nil
}

func resolveBound(arg string, auto int, found bool) (int, error) {
	if strings.EqualFold(arg, Auto) {
		if !found {
			return 0, ErrNoCandidates
		}
		return auto, nil
	}
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bound %q is neither an integer nor %q", arg, Auto)
	}
	return v, nil
}

// ParseDelta resolves the increment argument against ini/fin. The equation
// form is tried first: "ref=target" solves delta = target - ref, where ref
// defaults to ini. Otherwise the argument must be an optionally-signed
// integer literal. Anything else wraps [ErrIncrement].
func ParseDelta(arg string, ini, fin int) (int, error) {
	if m := equationRE.FindStringSubmatch(arg); m != nil {
		target, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrIncrement, arg)
		}
		ref := ini
		switch m[1] {
		case "", "i", "ini":
			// ref already ini
		case "f", "fin":
			ref = fin
		default:
			ref, err = strconv.Atoi(m[1])
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrIncrement, arg)
			}
		}
		return target - ref, nil
	}

	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIncrement, arg)
	}
	return v, nil
}

// orient applies direction safety: if sign(delta)*(fin-ini) is positive the
// iteration would walk towards its own targets, so the bounds are swapped
// and the walk proceeds from the far end backwards.
func orient(ini, fin, delta int) (int, int) {
	if delta > 0 && fin > ini || delta < 0 && fin < ini {
		return fin, ini
	}
	return ini, fin
}
