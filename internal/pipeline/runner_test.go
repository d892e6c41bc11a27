package pipeline

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ironsheep/page-renumber/internal/config"
	"github.com/ironsheep/page-renumber/internal/scan"
)

// writePage writes a real image file so orientation classification works.
// Portrait pages are 100x150, landscape ones 300x150.
func writePage(t *testing.T, dir, name string, landscape bool) {
	t.Helper()
	w, h := 100, 150
	if landscape {
		w, h = 300, 150
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{230, 230, 230, 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	if strings.HasSuffix(name, ".png") {
		require.NoError(t, png.Encode(f, img))
	} else {
		require.NoError(t, jpeg.Encode(f, img, nil))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func runCfg(dir, ini, fin, delta string) config.Config {
	cfg := config.Default()
	cfg.Dir = dir
	cfg.Ini, cfg.Fin, cfg.Delta = ini, fin, delta
	return cfg
}

func run(t *testing.T, cfg config.Config) *Summary {
	t.Helper()
	require.NoError(t, cfg.Validate())
	sum, err := Run(&cfg, zap.NewNop().Sugar(), strings.NewReader(""), io.Discard)
	require.NoError(t, err)
	return sum
}

func TestRunShiftUp(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"001.jpg", "002.jpg", "003.jpg", "004.jpg", "005.jpg"} {
		writePage(t, dir, n, false)
	}

	sum := run(t, runCfg(dir, "auto", "auto", "+10"))

	assert.Equal(t, []string{"011.jpg", "012.jpg", "013.jpg", "014.jpg", "015.jpg"}, listDir(t, dir))
	assert.Equal(t, 5, sum.Renamed)
	assert.Equal(t, 0, sum.Anomalies)
	assert.Equal(t, "11 --> 15", sum.Range())
}

func TestRunShiftDown(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"011.jpg", "012.jpg", "013.jpg"} {
		writePage(t, dir, n, false)
	}

	sum := run(t, runCfg(dir, "auto", "auto", "=1"))

	assert.Equal(t, []string{"001.jpg", "002.jpg", "003.jpg"}, listDir(t, dir))
	assert.Equal(t, "1 --> 3", sum.Range())
}

func TestRunAnomalyPromotion(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", false)
	writePage(t, dir, "003.jpg", true) // mis-numbered spread
	writePage(t, dir, "004.jpg", false)

	sum := run(t, runCfg(dir, "auto", "auto", "0"))

	assert.Equal(t, []string{"001.jpg", "002.jpg", "003-004.jpg", "005.jpg"}, listDir(t, dir))
	assert.Equal(t, 1, sum.Anomalies)
	assert.Equal(t, 2, sum.Renamed, "004 shifts and 003 is promoted")
	assert.Equal(t, "1 --> 5", sum.Range())
}

func TestRunAnomalyAtEndReportsSpreadRange(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", true)

	sum := run(t, runCfg(dir, "auto", "auto", "0"))

	assert.Equal(t, []string{"001.jpg", "002-003.jpg"}, listDir(t, dir))
	assert.True(t, sum.SpreadEnd)
	assert.Equal(t, "1 --> 2-3", sum.Range())
}

func TestRunKeepGaps(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", false)
	writePage(t, dir, "003.jpg", true)
	// 004 was already left free for the spread; 005 must not shift.
	writePage(t, dir, "005.jpg", false)

	cfg := runCfg(dir, "auto", "auto", "0")
	cfg.KeepGaps = true
	sum := run(t, cfg)

	assert.Equal(t, []string{"001.jpg", "002.jpg", "003-004.jpg", "005.jpg"}, listDir(t, dir))
	assert.Equal(t, 1, sum.Renamed)
	assert.Equal(t, "1 --> 5", sum.Range())
}

func TestRunNoAnomaliesSkipsSecondPass(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", false)

	sum := run(t, runCfg(dir, "auto", "auto", "0"))

	assert.Equal(t, 0, sum.Renamed, "no anomaly and zero delta means zero renames")
	assert.Equal(t, []string{"001.jpg", "002.jpg"}, listDir(t, dir))
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", false)
	writePage(t, dir, "003.jpg", true)
	writePage(t, dir, "004.jpg", false)

	cfg := runCfg(dir, "auto", "auto", "0")
	cfg.DryRun = true
	require.NoError(t, cfg.Validate())

	var out strings.Builder
	sum, err := Run(&cfg, zap.NewNop().Sugar(), strings.NewReader(""), &out)
	require.NoError(t, err)

	// Same decisions as the live run in TestRunAnomalyPromotion...
	assert.Equal(t, 2, sum.Renamed)
	assert.Equal(t, 1, sum.Anomalies)
	assert.Equal(t, "1 --> 5", sum.Range())
	// ...but the directory is untouched.
	assert.Equal(t, []string{"001.jpg", "002.jpg", "003.jpg", "004.jpg"}, listDir(t, dir))

	// The plan table reports what a live run would have done.
	assert.Contains(t, out.String(), "004.jpg ==> 005.jpg")
	assert.Contains(t, out.String(), "003.jpg ==> 003-004.jpg")
}

func TestRunMovesSpreadFiles(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002-003.jpg", true)
	writePage(t, dir, "004.jpg", false)

	sum := run(t, runCfg(dir, "auto", "auto", "+1"))

	assert.Equal(t, []string{"002.jpg", "003-004.jpg", "005.jpg"}, listDir(t, dir))
	assert.Equal(t, 0, sum.Anomalies, "a landscape spread is not an anomaly")
	assert.Equal(t, "2 --> 5", sum.Range())
}

func TestRunPortraitSpreadIsNoted(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002-003.jpg", false) // numbered as spread, looks single

	sum := run(t, runCfg(dir, "auto", "auto", "0"))

	assert.Equal(t, 1, sum.Notes)
	assert.Equal(t, 0, sum.Anomalies)
	assert.Equal(t, []string{"001.jpg", "002-003.jpg"}, listDir(t, dir))
}

func TestRunCollisionOutsideSetIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", false)
	writePage(t, dir, "011.jpg", true) // stray file already at a target name

	sum := run(t, runCfg(dir, "1", "2", "+10"))

	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, 1, sum.Renamed)
	names := listDir(t, dir)
	assert.Contains(t, names, "001.jpg", "collided source stays put")
	assert.Contains(t, names, "011.jpg")
	assert.Contains(t, names, "012.jpg")
}

func TestRunNoDouble(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002-003.jpg", true)

	cfg := runCfg(dir, "auto", "auto", "+1")
	cfg.NoDouble = true
	sum := run(t, cfg)

	// The spread file is invisible without double handling.
	assert.Equal(t, []string{"002-003.jpg", "002.jpg"}, listDir(t, dir))
	assert.Equal(t, "2 --> 2", sum.Range())
	assert.Equal(t, 1, sum.Renamed)
}

// Without double-page handling there is no spread name to promote into,
// so a landscape single is reported but never flagged.
func TestRunNoDoubleLandscapeSingle(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", true)

	cfg := runCfg(dir, "auto", "auto", "0")
	cfg.NoDouble = true
	sum := run(t, cfg)

	assert.Equal(t, 0, sum.Anomalies)
	assert.Equal(t, 0, sum.Renamed)
	assert.Equal(t, []string{"001.jpg", "002.jpg"}, listDir(t, dir))
	assert.Equal(t, "1 --> 2", sum.Range())
}

func TestRunNoOffsetLeavesAnomaliesInPlace(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", true)
	writePage(t, dir, "003.jpg", false)

	cfg := runCfg(dir, "auto", "auto", "0")
	cfg.NoOffset = true
	sum := run(t, cfg)

	assert.Equal(t, 1, sum.Anomalies)
	assert.Equal(t, 0, sum.Renamed)
	assert.Equal(t, []string{"001.jpg", "002.jpg", "003.jpg"}, listDir(t, dir))
}

func TestRunMixedExtensions(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.png", false)

	sum := run(t, runCfg(dir, "auto", "auto", "+1"))

	assert.Equal(t, []string{"002.jpg", "003.png"}, listDir(t, dir))
	assert.Equal(t, "2 --> 3", sum.Range())
}

func TestRunInvalidDoubleAborts(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "003-005.jpg", true)

	cfg := runCfg(dir, "auto", "auto", "0")
	require.NoError(t, cfg.Validate())
	_, err := Run(&cfg, zap.NewNop().Sugar(), strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, scan.ErrInvalidDouble)
}

func TestRunNoCandidatesAborts(t *testing.T) {
	cfg := runCfg(t.TempDir(), "auto", "auto", "0")
	require.NoError(t, cfg.Validate())
	_, err := Run(&cfg, zap.NewNop().Sugar(), strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, scan.ErrNoCandidates)
}

// Direction safety, observable end to end: shifting 1..3 up by one must
// process 3 first, otherwise 002.jpg would overwrite the unprocessed 003.
func TestRunOverlappingShift(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "001.jpg", false)
	writePage(t, dir, "002.jpg", false)
	writePage(t, dir, "003.jpg", false)

	sum := run(t, runCfg(dir, "auto", "auto", "+1"))

	assert.Equal(t, []string{"002.jpg", "003.jpg", "004.jpg"}, listDir(t, dir))
	assert.Equal(t, 3, sum.Renamed)
	assert.Equal(t, 0, sum.Skipped, "in-set overlaps are not collisions")
}
