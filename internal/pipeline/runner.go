package pipeline

import (
	"io"

	"go.uber.org/zap"

	"github.com/ironsheep/page-renumber/internal/config"
	"github.com/ironsheep/page-renumber/internal/imaging"
	"github.com/ironsheep/page-renumber/internal/scan"
)

// Run executes one full renumber invocation: compile, scan, resolve, pass
// one, and (when anomalies were found and the pass is enabled) pass two.
// in feeds the interactive overwrite prompt.
func Run(cfg *config.Config, log *zap.SugaredLogger, in io.Reader, out io.Writer) (*Summary, error) {
	tpl, err := Compile(cfg)
	if err != nil {
		return nil, err
	}

	res, err := scan.New(cfg.Dir, tpl.SrcSingle, tpl.SrcSpread, cfg.Extensions, log).Scan()
	if err != nil {
		return nil, err
	}

	span, err := scan.Resolve(cfg.Ini, cfg.Fin, cfg.Delta, res)
	if err != nil {
		return nil, err
	}
	log.Debugf("span: [%d,%d] step %d delta %+d", span.Ini, span.Fin, span.Step, span.Delta)

	policy := PolicySkip
	switch {
	case cfg.Force:
		policy = PolicyForce
	case cfg.Interactive:
		policy = PolicyInteractive
	}
	if cfg.DryRun {
		log.Infof("dry run: no file will be touched")
	}

	mover := NewMover(cfg.Dir, cfg.DryRun, policy, in, out, log)
	exec := NewExecutor(cfg, tpl, mover, imaging.NewCache(), log)

	p1, err := exec.PassOne(span)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Matched:    p1.Seen,
		Anomalies:  len(p1.Flags),
		Notes:      p1.Notes,
		ColorPages: p1.ColorPages,
		MonoPages:  p1.MonoPages,
		DryRun:     cfg.DryRun,
	}
	if !p1.Seen {
		log.Infof("nothing to do in [%d,%d]", span.Ini, span.Fin)
		sum.Renamed, sum.Skipped = mover.Moves, mover.Skips
		return sum, nil
	}
	sum.RangeLow, sum.RangeHigh = p1.T0, p1.Tf

	switch {
	case len(p1.Flags) == 0:
		log.Infof("no anomalies found, gap pass not needed")
		sum.SpreadEnd = exec.spreadAt(p1.Tf)
	case cfg.NoOffset:
		log.Infof("%d anomalies found, gap pass disabled", len(p1.Flags))
		sum.SpreadEnd = exec.spreadAt(p1.Tf)
	default:
		offsets := BuildOffsets(p1, cfg.KeepGaps)
		p2, err := exec.PassTwo(p1, offsets)
		if err != nil {
			return nil, err
		}
		sum.RangeHigh = p2.High
		sum.SpreadEnd = p2.SpreadEnd
	}

	sum.Renamed, sum.Skipped = mover.Moves, mover.Skips
	if cfg.DryRun {
		mover.RenderPlan(out)
	}
	log.Infof("renumbered: %s", sum.Range())
	return sum, nil
}
