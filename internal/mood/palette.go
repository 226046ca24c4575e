package mood

import "fmt"

// Anchors sampled from the viridis colormap at its quartiles. Piecewise-linear
// interpolation between them gives a stable n-color scale without pulling in a
// full colormap dependency.
var viridisAnchors = []struct {
	pos     float64
	r, g, b float64
}{
	{0.00, 0x44, 0x01, 0x54},
	{0.25, 0x3b, 0x52, 0x8b},
	{0.50, 0x21, 0x91, 0x8c},
	{0.75, 0x5e, 0xc9, 0x62},
	{1.00, 0xfd, 0xe7, 0x25},
}

// viridis returns n hex colors evenly spaced along the scale.
func viridis(n int) []string {
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = sampleViridis(t)
	}
	return colors
}

func sampleViridis(t float64) string {
	if t <= 0 {
		a := viridisAnchors[0]
		return fmt.Sprintf("%02x%02x%02x", int(a.r), int(a.g), int(a.b))
	}
	for i := 1; i < len(viridisAnchors); i++ {
		lo, hi := viridisAnchors[i-1], viridisAnchors[i]
		if t > hi.pos {
			continue
		}
		f := (t - lo.pos) / (hi.pos - lo.pos)
		r := lo.r + (hi.r-lo.r)*f
		g := lo.g + (hi.g-lo.g)*f
		b := lo.b + (hi.b-lo.b)*f
		return fmt.Sprintf("%02x%02x%02x", int(r+0.5), int(g+0.5), int(b+0.5))
	}
	a := viridisAnchors[len(viridisAnchors)-1]
	return fmt.Sprintf("%02x%02x%02x", int(a.r), int(a.g), int(a.b))
}
