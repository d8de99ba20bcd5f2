//Package trajplot produces quick-look plots of trajectory analyses:
//per-frame geometric/mass centers and per-frame squared displacements.
package trajplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/angstromgo/angstrom"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//CentersPlot plots the x, y and z components of the per-frame center of the
//trajectory (center of mass if mass is true, geometric center otherwise)
//against the frame number, and saves the figure to plotname.png.
func CentersPlot(traj *angstrom.Trajectory, mass bool, title, plotname string) error {
	centers, err := traj.Centers(mass)
	if err != nil {
		return err
	}
	p := basicPlot(title, "Frame", "Center / Å")
	frames := centers.NVecs()
	lines := make([]interface{}, 0, 6)
	for axis, label := range []string{"x", "y", "z"} {
		pts := make(plotter.XYs, frames)
		for f := 0; f < frames; f++ {
			pts[f].X = float64(f)
			pts[f].Y = centers.At(f, axis)
		}
		lines = append(lines, label, pts)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

//SDPlot plots the per-frame squared displacement of one atom along one axis
//(0, 1 or 2 for x, y, z) relative to the reference frame, and saves the
//figure to plotname.png. The mean of the plotted values is the MSD of that
//coordinate series.
func SDPlot(traj *angstrom.Trajectory, atom, axis, reference int, title, plotname string) error {
	series, err := traj.Coordinate(atom, axis)
	if err != nil {
		return err
	}
	if reference < 0 || reference >= len(series) {
		return fmt.Errorf("reference frame %d out of range for %d frames", reference, len(series))
	}
	ref := series[reference]
	pts := make(plotter.XYs, len(series))
	for f, v := range series {
		pts[f].X = float64(f)
		pts[f].Y = (v - ref) * (v - ref)
	}
	p := basicPlot(title, "Frame", "Squared displacement / Å²")
	if err := plotutil.AddLinePoints(p, "sd", pts); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
