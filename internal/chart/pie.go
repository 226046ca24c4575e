// Package chart renders mood distribution pie charts as PNG artifacts.
package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/mood"
)

type Renderer struct {
	dir    string
	logger internal.Logger
}

func NewRenderer(dir string, logger internal.Logger) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("chart: creating %s: %w", dir, err)
	}
	return &Renderer{dir: dir, logger: logger}, nil
}

// Render draws the category distribution for the window and writes it to a
// file named from the window key, overwriting any previous artifact for the
// same period. An empty counts map is the expected "no data" case and yields
// an empty path with no error. Each call renders into its own buffer; nothing
// is retained between renders.
func (r *Renderer) Render(window internal.ReportWindow, counts map[int]int) (string, error) {
	if len(counts) == 0 {
		return "", nil
	}

	total := 0
	ids := make([]int, 0, len(counts))
	for id, n := range counts {
		ids = append(ids, id)
		total += n
	}
	sort.Ints(ids)

	values := make([]gochart.Value, 0, len(ids))
	for _, id := range ids {
		cat, ok := mood.Get(id)
		if !ok {
			r.logger.Warnf("chart: skipping unknown category %d", id)
			continue
		}
		pct := float64(counts[id]) * 100 / float64(total)
		values = append(values, gochart.Value{
			Value: float64(counts[id]),
			Label: fmt.Sprintf("%s %.1f%%", cat.Short, pct),
			Style: gochart.Style{FillColor: drawing.ColorFromHex(cat.Color)},
		})
	}

	pie := gochart.PieChart{
		Title:  "Mood for " + window.Title(),
		Width:  1024,
		Height: 768,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(gochart.PNG, &buf); err != nil {
		return "", fmt.Errorf("chart: rendering %s: %w", window.Key, err)
	}

	path := filepath.Join(r.dir, fmt.Sprintf("mood_%s.png", window.Key))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("chart: writing %s: %w", path, err)
	}
	r.logger.Debugf("chart: wrote %s (%d slices)", path, len(values))
	return path, nil
}

// Legend lists the full label and count of every charted category, one per
// line. The transport sends it alongside the image, since the in-slice labels
// are shortened.
func Legend(counts map[int]int) string {
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		cat, ok := mood.Get(id)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s — %d", cat.Label, counts[id]))
	}
	return strings.Join(lines, "\n")
}
