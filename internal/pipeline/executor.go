package pipeline

import (
	"go.uber.org/zap"

	"github.com/ironsheep/page-renumber/internal/config"
	"github.com/ironsheep/page-renumber/internal/imaging"
	"github.com/ironsheep/page-renumber/internal/scan"
)

// PassOneResult is what the first rename pass learned about the
// transformed range. Flags marks transformed numbers whose single-page
// file is landscape, the anomaly the gap-offset pass corrects.
type PassOneResult struct {
	Flags map[int]bool
	T0    int // lowest transformed number seen
	Tf    int // highest transformed number seen
	Seen  bool

	ColorPages int
	MonoPages  int
	Notes      int // spread-numbered files that look like single pages
}

// Executor performs the two rename passes over one directory.
type Executor struct {
	cfg   *config.Config
	tpl   *Templates
	mover *Mover
	cache *imaging.Cache
	log   *zap.SugaredLogger
}

// NewExecutor wires an executor from its collaborators.
func NewExecutor(cfg *config.Config, tpl *Templates, mover *Mover, cache *imaging.Cache, log *zap.SugaredLogger) *Executor {
	return &Executor{cfg: cfg, tpl: tpl, mover: mover, cache: cache, log: log}
}

// PassOne walks the span in its collision-safe direction and renames every
// matched file by the delta. Landscape single pages raise an anomaly flag
// at their transformed number; portrait spreads are only noted. With
// spread handling disabled there is no spread name to promote into, so
// landscape pages are reported but never flagged.
func (e *Executor) PassOne(span scan.Span) (*PassOneResult, error) {
	p := &PassOneResult{Flags: map[int]bool{}}

	for n := span.Ini; ; n += span.Step {
		t := n + span.Delta
		for _, ext := range e.cfg.Extensions {
			if err := e.passOneSingle(n, t, ext, p); err != nil {
				return nil, err
			}
			if e.tpl.SrcSpread != nil {
				if err := e.passOneSpread(n, t, ext, p); err != nil {
					return nil, err
				}
			}
		}
		if n == span.Fin {
			break
		}
	}
	return p, nil
}

func (e *Executor) passOneSingle(n, t int, ext string, p *PassOneResult) error {
	src := e.tpl.SrcSingle.Format(n) + "." + ext
	if !e.mover.Exists(src) {
		return nil
	}

	orient := e.classify(src, p)
	dst := e.tpl.DstSingle.Format(t) + "." + ext
	if src != dst {
		if err := e.mover.Move(src, dst); err != nil {
			return err
		}
	}

	if orient == imaging.Landscape {
		if e.tpl.DstSpread == nil {
			e.log.Infof("note: %s is landscape but double-page handling is disabled", src)
		} else {
			p.Flags[t] = true
			e.log.Infof("anomaly: %s is landscape, a single number holding a double page", src)
			e.probeSeam(src)
		}
	}
	p.extend(t)
	return nil
}

func (e *Executor) passOneSpread(n, t int, ext string, p *PassOneResult) error {
	src := e.tpl.SrcSpread.Format(n, n+1) + "." + ext
	if !e.mover.Exists(src) {
		return nil
	}

	orient := e.classify(src, p)
	if orient == imaging.Portrait {
		// The opposite disagreement: numbered as a spread, shaped like a
		// single page. Worth telling the user, but it frees no number, so
		// no offset is generated.
		p.Notes++
		e.log.Infof("note: %s is numbered as a double page but looks portrait", src)
	}

	dst := e.tpl.DstSpread.Format(t, t+1) + "." + ext
	if src != dst {
		if err := e.mover.Move(src, dst); err != nil {
			return err
		}
	}
	p.extend(t)
	return nil
}

// classify reads orientation and tone for one file. Undecodable files are
// treated as portrait with a warning; the run keeps going.
func (e *Executor) classify(name string, p *PassOneResult) imaging.Orientation {
	path := e.mover.Path(name)
	defer e.cache.Evict(path)

	orient, err := imaging.Classify(e.cache, path)
	if err != nil {
		e.log.Warnf("cannot classify %s, assuming portrait: %v", name, err)
		return orient
	}

	if img, err := e.cache.Load(path); err == nil {
		tone := imaging.ClassifyTone(img)
		if tone == imaging.Color {
			p.ColorPages++
		} else {
			p.MonoPages++
		}
		e.log.Debugf("%s: %s, %s", name, orient, tone)
	}
	return orient
}

// probeSeam runs the advisory gutter probe on a flagged page.
func (e *Executor) probeSeam(name string) {
	path := e.mover.Path(name)
	img, err := e.cache.Load(path)
	if err != nil {
		return
	}
	defer e.cache.Evict(path)

	res := imaging.ProbeGutter(img)
	if res.Seam {
		e.log.Infof("  center fold detected in %s", name)
	} else {
		e.log.Debugf("  no center fold in %s (center %.1f, global %.1f)",
			name, res.CenterMean, res.GlobalMean)
	}
}

func (p *PassOneResult) extend(t int) {
	if !p.Seen {
		p.T0, p.Tf = t, t
		p.Seen = true
		return
	}
	if t < p.T0 {
		p.T0 = t
	}
	if t > p.Tf {
		p.Tf = t
	}
}
