package trajplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/angstromgo/angstrom"
	v3 "github.com/angstromgo/angstrom/v3"
)

func testTraj(Te *testing.T) *angstrom.Trajectory {
	atoms := make([][]string, 5)
	coords := make([]*v3.Matrix, 5)
	for f := range atoms {
		atoms[f] = []string{"C", "H"}
		z := float64(f)
		m, err := v3.NewMatrix([]float64{0, 0, z, 1, 0, z})
		if err != nil {
			Te.Fatal(err)
		}
		coords[f] = m
	}
	traj, err := angstrom.NewTrajectory(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return traj
}

func TestCentersPlot(Te *testing.T) {
	traj := testTraj(Te)
	base := filepath.Join(Te.TempDir(), "centers")
	if err := CentersPlot(traj, false, "Centers", base); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(base + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty plot file")
	}
}

func TestSDPlot(Te *testing.T) {
	traj := testTraj(Te)
	base := filepath.Join(Te.TempDir(), "sd")
	if err := SDPlot(traj, 0, 2, 0, "Squared displacement", base); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(base + ".png"); err != nil {
		Te.Fatal(err)
	}
	if err := SDPlot(traj, 0, 2, 9, "bad", base); err == nil {
		Te.Error("expected an error for an out of range reference frame")
	}
	if err := SDPlot(traj, 9, 2, 0, "bad", base); err == nil {
		Te.Error("expected an error for an out of range atom")
	}
}
