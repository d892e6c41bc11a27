package pipeline

import (
	"github.com/ironsheep/page-renumber/internal/config"
	"github.com/ironsheep/page-renumber/internal/pattern"
)

// Templates holds the four compiled templates of a run. Source templates
// drive discovery and pass-one source names; target templates drive every
// name written. The spread templates are nil when double-page handling is
// disabled.
type Templates struct {
	SrcSingle *pattern.Number
	DstSingle *pattern.Number
	SrcSpread *pattern.Spread
	DstSpread *pattern.Spread
}

// Compile builds the Templates from a validated Config. Explicit
// double-page templates win over derivation from the single template plus
// the join literal; the optional second-number template only contributes
// its width policy.
func Compile(cfg *config.Config) (*Templates, error) {
	src, err := pattern.ParseNumber(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	dst, err := pattern.ParseNumber(cfg.TargetPattern)
	if err != nil {
		return nil, err
	}
	t := &Templates{SrcSingle: src, DstSingle: dst}
	if cfg.NoDouble {
		return t, nil
	}

	var second *pattern.Number
	if cfg.SecondPattern != "" {
		if second, err = pattern.ParseNumber(cfg.SecondPattern); err != nil {
			return nil, err
		}
	}

	if cfg.DoublePattern != "" {
		t.SrcSpread, err = pattern.ParseSpread(cfg.DoublePattern, cfg.Reversed)
	} else {
		t.SrcSpread, err = pattern.Derive(src, cfg.Join, second, cfg.Reversed)
	}
	if err != nil {
		return nil, err
	}

	if cfg.TargetDoublePattern != "" {
		t.DstSpread, err = pattern.ParseSpread(cfg.TargetDoublePattern, cfg.Reversed)
	} else {
		t.DstSpread, err = pattern.Derive(dst, cfg.Join, second, cfg.Reversed)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
