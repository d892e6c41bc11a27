package pipeline

// BuildOffsets computes the cumulative gap offset for every transformed
// number in [p.T0, p.Tf]. The table is built walking upwards: each number
// first receives the running offset, then a flagged number increments it,
// so the flagged page itself stays put and everything above it shifts by
// one more. In gap-preserving mode the increment is suppressed: the
// numbering is trusted to have already reserved the second slot.
func BuildOffsets(p *PassOneResult, keepGaps bool) map[int]int {
	offsets := make(map[int]int, p.Tf-p.T0+1)
	off := 0
	for t := p.T0; t <= p.Tf; t++ {
		offsets[t] = off
		if p.Flags[t] && !keepGaps {
			off++
		}
	}
	return offsets
}

// PassTwoResult is the outcome of the gap-offset pass.
type PassTwoResult struct {
	High      int  // highest realized number after offsetting
	SpreadEnd bool // the file landing at High is a spread
}

// PassTwo performs the corrective second pass, walking the transformed
// range from the top down so no shift overwrites a not-yet-shifted
// neighbor. Flagged numbers are promoted from single to spread names; all
// other numbers with a non-zero offset are shifted, single and spread
// variants alike.
func (e *Executor) PassTwo(p *PassOneResult, offsets map[int]int) (*PassTwoResult, error) {
	for t := p.Tf; t >= p.T0; t-- {
		off := offsets[t]
		for _, ext := range e.cfg.Extensions {
			single := e.tpl.DstSingle.Format(t) + "." + ext

			switch {
			case p.Flags[t]:
				if !e.mover.Exists(single) {
					continue
				}
				spread := e.tpl.DstSpread.Format(t+off, t+off+1) + "." + ext
				if err := e.mover.Move(single, spread); err != nil {
					return nil, err
				}

			case off == 0:
				// Already correctly placed. Under dry-run, say so.
				if e.cfg.DryRun && e.mover.Exists(single) {
					e.log.Infof("ok: %s is already in place", single)
				}

			default:
				if e.mover.Exists(single) {
					dst := e.tpl.DstSingle.Format(t+off) + "." + ext
					if err := e.mover.Move(single, dst); err != nil {
						return nil, err
					}
				}
				spread := e.tpl.DstSpread.Format(t, t+1) + "." + ext
				if e.mover.Exists(spread) {
					dst := e.tpl.DstSpread.Format(t+off, t+off+1) + "." + ext
					if err := e.mover.Move(spread, dst); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	high := p.Tf + offsets[p.Tf]
	return &PassTwoResult{High: high, SpreadEnd: p.Flags[p.Tf] || e.spreadAt(high)}, nil
}

// spreadAt reports whether any registered extension holds a spread file
// starting at number t.
func (e *Executor) spreadAt(t int) bool {
	if e.tpl.DstSpread == nil {
		return false
	}
	for _, ext := range e.cfg.Extensions {
		if e.mover.Exists(e.tpl.DstSpread.Format(t, t+1) + "." + ext) {
			return true
		}
	}
	return false
}
