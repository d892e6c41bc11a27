package scan

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ironsheep/page-renumber/internal/pattern"
)

// ErrNoCandidates is returned when auto-range resolution finds no matching
// file for any registered extension.
var ErrNoCandidates = errors.New("no valid candidates")

// ErrInvalidDouble is returned when a file matches the spread shape but its
// two numbers are not consecutive.
var ErrInvalidDouble = errors.New("invalid double page")

// Candidate is a file matched by one of the compiled templates.
type Candidate struct {
	Name   string // base name, extension included
	Ext    string
	First  int
	Second int // equal to First for single pages
	Spread bool
}

// Window is the numeric interval covered by the matched candidates.
type Window struct {
	Low  int
	High int
}

// Result accumulates everything a scan found.
type Result struct {
	Singles []Candidate
	Spreads []Candidate
	Window  Window
	Found   bool
}

// Scanner enumerates existing files in one directory against a single-page
// template and, optionally, a spread template.
type Scanner struct {
	dir    string
	single *pattern.Number
	spread *pattern.Spread // nil disables spread discovery
	exts   []string
	log    *zap.SugaredLogger
}

// New builds a Scanner. exts are bare extensions without the dot; spread
// may be nil when double-page handling is disabled.
func New(dir string, single *pattern.Number, spread *pattern.Spread, exts []string, log *zap.SugaredLogger) *Scanner {
	return &Scanner{dir: dir, single: single, spread: spread, exts: exts, log: log}
}

// Scan walks every registered extension and returns the matched candidates
// with their numeric window. It fails with [ErrInvalidDouble] on a broken
// spread; an empty result is not an error here, the range resolver decides
// whether that is fatal.
func (s *Scanner) Scan() (*Result, error) {
	res := &Result{}

	for _, ext := range s.exts {
		if err := s.scanExt(ext, res); err != nil {
			return nil, err
		}
	}

	sort.Slice(res.Singles, func(i, j int) bool { return res.Singles[i].First < res.Singles[j].First })
	sort.Slice(res.Spreads, func(i, j int) bool { return res.Spreads[i].First < res.Spreads[j].First })

	s.log.Debugf("scan: %d singles, %d spreads, window [%d,%d]",
		len(res.Singles), len(res.Spreads), res.Window.Low, res.Window.High)
	return res, nil
}

func (s *Scanner) scanExt(ext string, res *Result) error {
	probes := []string{s.single.Glob() + "." + ext}
	if s.spread != nil {
		probes = append(probes, s.spread.Glob()+"."+ext)
	}

	seen := map[string]bool{}
	for _, probe := range probes {
		names, err := filepath.Glob(filepath.Join(s.dir, probe))
		if err != nil {
			return fmt.Errorf("bad probe %q: %w", probe, err)
		}
		for _, p := range names {
			name := filepath.Base(p)
			if seen[name] {
				continue
			}
			seen[name] = true

			base := strings.TrimSuffix(name, "."+ext)

			if v, ok := s.single.Match(base); ok {
				res.add(Candidate{Name: name, Ext: ext, First: v, Second: v})
				continue
			}
			if s.spread == nil {
				continue
			}
			first, second, ok := s.spread.Match(base)
			if !ok {
				// Probed but not a precise match: incidental file, ignore.
				continue
			}
			if second != first+1 {
				return fmt.Errorf("%w: %s has %d followed by %d", ErrInvalidDouble, name, first, second)
			}
			res.add(Candidate{Name: name, Ext: ext, First: first, Second: second, Spread: true})
		}
	}
	return nil
}

func (r *Result) add(c Candidate) {
	if !r.Found {
		r.Window = Window{Low: c.First, High: c.Second}
		r.Found = true
	} else {
		if c.First < r.Window.Low {
			r.Window.Low = c.First
		}
		if c.Second > r.Window.High {
			r.Window.High = c.Second
		}
	}
	if c.Spread {
		r.Spreads = append(r.Spreads, c)
	} else {
		r.Singles = append(r.Singles, c)
	}
}
