/* Copyright (C) 2023 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package goclip

/* -------------------------------------------------------------------------- */

import "fmt"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type ScatterConfig struct {
  Title   string
  XLabel  string
  YLabel  string
  AxisMax float64
  Size    vg.Length
}

func DefaultScatterConfig() ScatterConfig {
  config := ScatterConfig{}
  config.AxisMax = 15.0
  config.Size    = 5*vg.Inch
  return config
}

// DefaultPlotFilenames returns the file names the scatter plot is saved to,
// one raster and one vector graphics file derived from the given stem.
func DefaultPlotFilenames(stem string) []string {
  return []string{stem + ".png", stem + ".pdf"}
}

/* -------------------------------------------------------------------------- */

// PlotScatter draws a square scatter plot of the points (x[i], y[i]) with
// both axes fixed to [0, AxisMax], a dashed diagonal of slope one, and an
// annotation showing the correlation coefficient and p-value. The plot is
// written to every given file name, the graphics format is selected by the
// file name extension. Points outside the axis limits are dropped from the
// drawn set only, the correlation upstream always includes them.
func PlotScatter(x, y []float64, r, pvalue float64, config ScatterConfig, filenames ...string) error {
  if len(x) != len(y) {
    return fmt.Errorf("PlotScatter(): vectors have different length")
  }
  if config.AxisMax <= 0.0 {
    config.AxisMax = 15.0
  }
  if config.Size <= 0.0 {
    config.Size = 5*vg.Inch
  }
  xy := plotter.XYs{}
  for i := 0; i < len(x); i++ {
    if x[i] < 0.0 || x[i] > config.AxisMax {
      continue
    }
    if y[i] < 0.0 || y[i] > config.AxisMax {
      continue
    }
    xy = append(xy, plotter.XY{X: x[i], Y: y[i]})
  }
  p := plot.New()
  p.Title.Text   = config.Title
  p.X.Label.Text = config.XLabel
  p.Y.Label.Text = config.YLabel
  p.X.Min, p.X.Max = 0.0, config.AxisMax
  p.Y.Min, p.Y.Max = 0.0, config.AxisMax

  scatter, err := plotter.NewScatter(xy)
  if err != nil {
    return err
  }
  // diagonal marking equal signal in both tracks
  diagonal, err := plotter.NewLine(plotter.XYs{
    {X: 0.0, Y: 0.0}, {X: config.AxisMax, Y: config.AxisMax}})
  if err != nil {
    return err
  }
  diagonal.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

  annotation, err := plotter.NewLabels(plotter.XYLabels{
    XYs:    plotter.XYs{{X: 0.05*config.AxisMax, Y: 0.95*config.AxisMax}},
    Labels: []string{fmt.Sprintf("r = %.3f, p = %.3g", r, pvalue)}})
  if err != nil {
    return err
  }
  p.Add(scatter, diagonal, annotation)

  for _, filename := range filenames {
    if err := p.Save(config.Size, config.Size, filename); err != nil {
      return err
    }
  }
  return nil
}
