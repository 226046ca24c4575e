package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
)

func testWindow() internal.ReportWindow {
	return internal.ReportWindow{
		Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local),
		Label: "March",
		Year:  "2024",
		Key:   "month_2024-03",
	}
}

func TestRenderWritesDeterministicArtifact(t *testing.T) {
	r, err := NewRenderer(t.TempDir(), internal.NewNopLogger())
	require.NoError(t, err)

	counts := map[int]int{0: 2, 2: 1, 7: 4}
	path, err := r.Render(testWindow(), counts)
	require.NoError(t, err)
	assert.Equal(t, "mood_month_2024-03.png", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderOverwritesOnRerender(t *testing.T) {
	r, err := NewRenderer(t.TempDir(), internal.NewNopLogger())
	require.NoError(t, err)

	counts := map[int]int{1: 3}
	first, err := r.Render(testWindow(), counts)
	require.NoError(t, err)

	second, err := r.Render(testWindow(), counts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-rendering the same period reuses the artifact path")

	_, err = os.Stat(second)
	assert.NoError(t, err)
}

func TestRenderNoDataYieldsNoArtifact(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(dir, internal.NewNopLogger())
	require.NoError(t, err)

	path, err := r.Render(testWindow(), map[int]int{})
	assert.NoError(t, err, "no data is not an error")
	assert.Empty(t, path)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLegendListsFullLabels(t *testing.T) {
	legend := Legend(map[int]int{0: 2, 2: 1})
	assert.Contains(t, legend, "Positive 😊 — 2")
	assert.Contains(t, legend, "Sad 😢 — 1")
}

func TestLegendEmpty(t *testing.T) {
	assert.Empty(t, Legend(nil))
}
