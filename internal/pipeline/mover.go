package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// OverwritePolicy decides what happens when a rename target already exists
// and is not part of the planned shift.
type OverwritePolicy int

const (
	// PolicySkip reports the collision and leaves the source untouched.
	PolicySkip OverwritePolicy = iota
	// PolicyForce overwrites the colliding file.
	PolicyForce
	// PolicyInteractive asks on the terminal before overwriting.
	PolicyInteractive
)

// Mover is the filesystem move primitive for one run. It works on names
// relative to the run directory and keeps a virtual view of which names
// this run has vacated or placed, so existence checks in dry-run mode see
// the directory as the live run would have left it.
type Mover struct {
	dir    string
	dry    bool
	policy OverwritePolicy
	in     *bufio.Reader
	out    io.Writer
	log    *zap.SugaredLogger

	vacated map[string]bool
	placed  map[string]bool
	plan    []planEntry

	// Moves and Skips count performed (or simulated) renames and
	// collision skips.
	Moves int
	Skips int
}

type planEntry struct {
	from, to string
}

// NewMover builds a Mover rooted at dir. in and out are only used by the
// interactive overwrite prompt.
func NewMover(dir string, dry bool, policy OverwritePolicy, in io.Reader, out io.Writer, log *zap.SugaredLogger) *Mover {
	return &Mover{
		dir:     dir,
		dry:     dry,
		policy:  policy,
		in:      bufio.NewReader(in),
		out:     out,
		log:     log,
		vacated: map[string]bool{},
		placed:  map[string]bool{},
	}
}

// Exists reports whether name is present, taking this run's earlier moves
// into account. In dry-run mode that virtual state is what makes pass two
// see the files pass one would already have renamed.
func (m *Mover) Exists(name string) bool {
	if m.placed[name] {
		return true
	}
	if m.vacated[name] {
		return false
	}
	_, err := os.Stat(filepath.Join(m.dir, name))
	return err == nil
}

// Path returns the absolute path of a name inside the run directory.
func (m *Mover) Path(name string) string {
	return filepath.Join(m.dir, name)
}

// Move renames src to dst inside the run directory. A collision with an
// existing file is recoverable: depending on the policy it is skipped,
// confirmed interactively, or overwritten. The returned error is reserved
// for real filesystem failures.
func (m *Mover) Move(src, dst string) error {
	if src == dst {
		return nil
	}

	if m.Exists(dst) {
		switch m.policy {
		case PolicyForce:
			m.log.Warnf("overwriting %s", dst)
		case PolicyInteractive:
			if !m.confirm(dst) {
				m.log.Warnf("skipped: %s (target %s kept)", src, dst)
				m.Skips++
				return nil
			}
		default:
			m.log.Warnf("skipped: %s (target %s already exists, use --force or --interactive)", src, dst)
			m.Skips++
			return nil
		}
	}

	m.log.Infof("mv '%s' '%s'", src, dst)
	if !m.dry {
		if err := os.Rename(filepath.Join(m.dir, src), filepath.Join(m.dir, dst)); err != nil {
			return fmt.Errorf("rename %s: %w", src, err)
		}
	}

	m.placed[dst] = true
	delete(m.vacated, dst)
	m.vacated[src] = true
	delete(m.placed, src)
	m.plan = append(m.plan, planEntry{from: src, to: dst})
	m.Moves++
	return nil
}

// RenderPlan writes the renames of this run as an aligned two-column
// "old ==> new" table, in the order they were performed.
func (m *Mover) RenderPlan(w io.Writer) {
	width := 0
	for _, p := range m.plan {
		if len(p.from) > width {
			width = len(p.from)
		}
	}
	for _, p := range m.plan {
		fmt.Fprintf(w, "%-*s ==> %s\n", width, p.from, p.to)
	}
}

// confirm asks whether dst may be overwritten and reads a y/N answer.
func (m *Mover) confirm(dst string) bool {
	fmt.Fprintf(m.out, "overwrite %s? [y/N] ", dst)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
