package charts

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/foodlens/foodlens-cli/internal/profile"
	"github.com/foodlens/foodlens-cli/internal/utils"
)

// PNGRenderer draws chart specs as PNG files via gonum/plot.
type PNGRenderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewPNGRenderer returns a renderer with a default figure size.
func NewPNGRenderer() PNGRenderer {
	return PNGRenderer{Width: 8 * vg.Inch, Height: 5 * vg.Inch}
}

// Render draws one spec to path.
func (r PNGRenderer) Render(s Spec, path string) error {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel

	switch s.Kind {
	case RatingHistogram, CostHistogram:
		h, err := plotter.NewHist(plotter.Values(s.Values), s.Bins)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Kind, err)
		}
		p.Add(h)
	case FlagCounts, TopLocationsBar:
		b, err := plotter.NewBarChart(plotter.Values(s.Values), vg.Points(30))
		if err != nil {
			return fmt.Errorf("%s: %w", s.Kind, err)
		}
		p.Add(b)
		p.NominalX(s.Labels...)
		if s.Kind == TopLocationsBar {
			p.X.Tick.Label.Rotation = 0.5
		}
	case RatingCostScatter:
		xys := make(plotter.XYs, len(s.Points))
		for i, pt := range s.Points {
			xys[i].X = pt.X
			xys[i].Y = pt.Y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Kind, err)
		}
		p.Add(sc)
	case CorrHeatmap:
		cm := moreland.SmoothBlueRed()
		cm.SetMin(-1)
		cm.SetMax(1)
		h := plotter.NewHeatMap(corrGrid{m: s.Heat}, cm.Palette(255))
		p.Add(h)
		ticks := make([]plot.Tick, len(s.Heat.Columns))
		for i, c := range s.Heat.Columns {
			ticks[i] = plot.Tick{Value: float64(i), Label: c}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
		p.Y.Tick.Marker = plot.ConstantTicks(ticks)
		p.X.Tick.Label.Rotation = 0.5
	default:
		return fmt.Errorf("unknown chart kind %q", s.Kind)
	}

	if err := p.Save(r.Width, r.Height, path); err != nil {
		return fmt.Errorf("save %s: %w", s.Kind, err)
	}
	return nil
}

// RenderAll draws every spec into dir, one numbered PNG per chart, and
// returns the written paths. Any failure is fatal; there is no partial-plot
// recovery.
func RenderAll(r Renderer, specs []Spec, dir string) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("charts dir: %w", err)
	}
	paths := make([]string, 0, len(specs))
	for i, s := range specs {
		path := filepath.Join(dir, fmt.Sprintf("%02d_%s.png", i+1, s.Kind))
		if err := r.Render(s, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// corrGrid adapts a correlation matrix to gonum/plot's heat-map grid.
type corrGrid struct {
	m profile.CorrMatrix
}

func (g corrGrid) Dims() (c, r int)   { n := len(g.m.Columns); return n, n }
func (g corrGrid) Z(c, r int) float64 { return g.m.Values[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
