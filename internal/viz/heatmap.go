package viz

import (
	"fmt"
	"path/filepath"

	"github.com/fogleman/gg"

	"nitterlens/internal/analyze"
)

const (
	heatmapWidth  = 1200
	heatmapHeight = 600

	heatmapMarginLeft   = 110
	heatmapMarginTop    = 60
	heatmapMarginRight  = 30
	heatmapMarginBottom = 50
)

// Heatmap draws the day-of-week by hour-of-day mean engagement grid to
// {dir}/{handle}_heatmap.png and returns the path. It returns ("", nil)
// when there is not enough temporal data to plot, matching how the rest of
// the pipeline treats thin batches as non-fatal.
func (r *Renderer) Heatmap(dir, handle string, s analyze.Summary) (string, error) {
	if s.TotalPosts < 2 {
		r.log.Info("not enough data for heatmap", "handle", handle, "posts", s.TotalPosts)
		return "", nil
	}

	var maxVal float64
	samples := 0
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			if s.HeatmapCounts[d][h] > 0 {
				samples++
				if s.Heatmap[d][h] > maxVal {
					maxVal = s.Heatmap[d][h]
				}
			}
		}
	}
	if samples == 0 || maxVal == 0 {
		r.log.Info("no engagement data for heatmap", "handle", handle)
		return "", nil
	}

	if err := ensureDir(dir); err != nil {
		return "", err
	}

	dc := gg.NewContext(heatmapWidth, heatmapHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	hasFont := r.setFont(dc, 13)

	cellW := float64(heatmapWidth-heatmapMarginLeft-heatmapMarginRight) / 24
	cellH := float64(heatmapHeight-heatmapMarginTop-heatmapMarginBottom) / 7

	// Rows ordered Monday first; the pivot itself is indexed by time.Weekday.
	for row, day := range analyze.WeekDays {
		wd := (row + 1) % 7
		for h := 0; h < 24; h++ {
			x := float64(heatmapMarginLeft) + float64(h)*cellW
			y := float64(heatmapMarginTop) + float64(row)*cellH

			val := s.Heatmap[wd][h]
			cr, cg, cb := rampYlGnBu(val / maxVal)
			dc.SetRGB(cr, cg, cb)
			dc.DrawRectangle(x, y, cellW, cellH)
			dc.Fill()

			if s.HeatmapCounts[wd][h] > 0 {
				if val/maxVal > 0.6 {
					dc.SetRGB(1, 1, 1)
				} else {
					dc.SetRGB(0.15, 0.15, 0.15)
				}
				dc.DrawStringAnchored(fmt.Sprintf("%.1f", val), x+cellW/2, y+cellH/2, 0.5, 0.5)
			}
		}

		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(day, float64(heatmapMarginLeft)-10,
			float64(heatmapMarginTop)+(float64(row)+0.5)*cellH, 1, 0.5)
	}

	dc.SetRGB(0.2, 0.2, 0.2)
	for h := 0; h < 24; h++ {
		dc.DrawStringAnchored(fmt.Sprintf("%d", h),
			float64(heatmapMarginLeft)+(float64(h)+0.5)*cellW,
			float64(heatmapHeight-heatmapMarginBottom)+16, 0.5, 0.5)
	}

	if hasFont {
		r.setFont(dc, 20)
	}
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(fmt.Sprintf("Engagement Heatmap for @%s", handle),
		float64(heatmapWidth)/2, float64(heatmapMarginTop)/2, 0.5, 0.5)

	path := filepath.Join(dir, handle+"_heatmap.png")
	if err := dc.SavePNG(path); err != nil {
		return "", err
	}

	r.log.Info("saved heatmap", "path", path)
	return path, nil
}

// rampYlGnBu maps a normalized value to a yellow-green-blue color ramp.
func rampYlGnBu(t float64) (float64, float64, float64) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	// Anchor colors, light yellow through teal to deep blue.
	anchors := [][3]float64{
		{1.00, 1.00, 0.85},
		{0.63, 0.85, 0.71},
		{0.25, 0.63, 0.79},
		{0.13, 0.28, 0.59},
	}

	scaled := t * float64(len(anchors)-1)
	i := int(scaled)
	if i >= len(anchors)-1 {
		c := anchors[len(anchors)-1]
		return c[0], c[1], c[2]
	}
	f := scaled - float64(i)
	a, b := anchors[i], anchors[i+1]
	return a[0] + (b[0]-a[0])*f, a[1] + (b[1]-a[1])*f, a[2] + (b[2]-a[2])*f
}
