package evaluate

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"specfit/internal/display"
	"specfit/internal/dist"
	"specfit/internal/mgf"
)

// writeDiagnosticPlot renders a normalized histogram of the sample with
// the fitted density overlaid, at <dir>/<family>_<label>_<reps>.png.
func writeDiagnosticPlot(dir string, family *dist.Family, params dist.Params, sample mgf.Sample, reps int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("plot dir: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s on %s", display.FamilyName(family.Name()), sample.Label)
	p.X.Label.Text = sample.Label
	p.Y.Label.Text = "density"

	hist, err := plotter.NewHist(plotter.Values(sample.Values), 60)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	hist.Normalize(1)
	hist.FillColor = color.RGBA{R: 120, G: 160, B: 200, A: 160}
	p.Add(hist)

	pdf := plotter.NewFunction(func(x float64) float64 {
		return family.PDF(params, x)
	})
	pdf.Color = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	pdf.Width = vg.Points(1.5)
	pdf.Samples = 400
	p.Add(pdf)

	name := fmt.Sprintf("%s_%s_%d.png", family.Name(), sample.Label, reps)
	return p.Save(8*vg.Inch, 5*vg.Inch, filepath.Join(dir, name))
}
