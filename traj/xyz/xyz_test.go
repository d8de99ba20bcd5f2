package xyz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	v3 "github.com/angstromgo/angstrom/v3"
)

func testFrames(Te *testing.T) ([][]string, []*v3.Matrix) {
	c0, err := v3.NewMatrix([]float64{0, 0, 0, 1.089, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	c1, err := v3.NewMatrix([]float64{0, 0, 1, 1.089, 0, 1})
	if err != nil {
		Te.Fatal(err)
	}
	return [][]string{{"C", "H"}, {"C", "H"}}, []*v3.Matrix{c0, c1}
}

func compareFrames(Te *testing.T, atoms, batoms [][]string, coords, bcoords []*v3.Matrix) {
	if len(batoms) != len(atoms) {
		Te.Fatalf("frame count changed: %d vs %d", len(batoms), len(atoms))
	}
	for f := range atoms {
		for i := range atoms[f] {
			if batoms[f][i] != atoms[f][i] {
				Te.Errorf("frame %d atom %d label changed", f, i)
			}
			for k := 0; k < 3; k++ {
				if math.Abs(bcoords[f].At(i, k)-coords[f].At(i, k)) > 1e-6 {
					Te.Errorf("frame %d atom %d axis %d drifted", f, i, k)
				}
			}
		}
	}
}

func TestReadWrite(Te *testing.T) {
	atoms, coords := testFrames(Te)
	name := filepath.Join(Te.TempDir(), "pair.xyz")
	if err := WriteAll(name, atoms, coords, nil); err != nil {
		Te.Fatal(err)
	}
	batoms, bcoords, headers, err := ReadAll(name)
	if err != nil {
		Te.Fatal(err)
	}
	compareFrames(Te, atoms, batoms, coords, bcoords)
	//nil headers on write get synthesized defaults
	if len(headers) != 2 || headers[0] != "frame 0" || headers[1] != "frame 1" {
		Te.Errorf("unexpected synthesized headers: %v", headers)
	}
	//explicit headers survive
	if err := WriteAll(name, atoms, coords, []string{"one", "two"}); err != nil {
		Te.Fatal(err)
	}
	_, _, headers, err = ReadAll(name)
	if err != nil {
		Te.Fatal(err)
	}
	if headers[0] != "one" || headers[1] != "two" {
		Te.Errorf("headers did not survive: %v", headers)
	}
}

func TestWriteValidation(Te *testing.T) {
	atoms, coords := testFrames(Te)
	name := filepath.Join(Te.TempDir(), "bad.xyz")
	if err := WriteAll(name, atoms[:1], coords, nil); err == nil {
		Te.Error("expected an error for mismatched frame counts")
	}
	if err := WriteAll(name, atoms, coords, []string{"just one"}); err == nil {
		Te.Error("expected an error for a wrong-length header slice")
	}
	bad := [][]string{{"C"}, {"C", "H"}}
	if err := WriteAll(name, bad, coords, nil); err == nil {
		Te.Error("expected an error for inconsistent atoms and coordinates")
	}
	//no partial file may be left behind by a failed write
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		Te.Error("a failed write left a file behind")
	}
}

func TestMalformed(Te *testing.T) {
	dir := Te.TempDir()
	cases := []struct {
		name    string
		content string
		hint    string
	}{
		{"truncated.xyz", "3\nheader\nC 0.0 0.0 0.0\nH 1.0 0.0 0.0\n", "declares 3 atoms"},
		{"badcount.xyz", "two\nheader\nC 0.0 0.0 0.0\n", "does not parse"},
		{"badcoord.xyz", "1\nheader\nC 0.0 zero 0.0\n", "does not parse"},
		{"shortline.xyz", "1\nheader\nC 0.0 0.0\n", "3 coordinates"},
		{"negcount.xyz", "-2\nheader\n", "not positive"},
	}
	for _, c := range cases {
		name := filepath.Join(dir, c.name)
		if err := os.WriteFile(name, []byte(c.content), 0644); err != nil {
			Te.Fatal(err)
		}
		_, _, _, err := ReadAll(name)
		if err == nil {
			Te.Errorf("%s: expected an error", c.name)
			continue
		}
		fmt.Println(c.name, err)
		if !strings.Contains(err.Error(), c.hint) {
			Te.Errorf("%s: error %q does not mention %q", c.name, err, c.hint)
		}
		terr, ok := err.(Error)
		if !ok {
			Te.Errorf("%s: error is not an xyz.Error", c.name)
			continue
		}
		if terr.FileName() != name || terr.Format() != "xyz" || !terr.Critical() {
			Te.Errorf("%s: wrong error metadata", c.name)
		}
	}
}

func TestCompressed(Te *testing.T) {
	atoms, coords := testFrames(Te)
	dir := Te.TempDir()
	for _, ext := range []string{".xyz.gz", ".xyz.zst"} {
		name := filepath.Join(dir, "pair"+ext)
		if err := WriteAll(name, atoms, coords, nil); err != nil {
			Te.Fatal(err)
		}
		batoms, bcoords, _, err := ReadAll(name)
		if err != nil {
			Te.Fatal(err)
		}
		compareFrames(Te, atoms, batoms, coords, bcoords)
	}
}

func TestStream(Te *testing.T) {
	atoms, coords := testFrames(Te)
	name := filepath.Join(Te.TempDir(), "pair.xyz")
	if err := WriteAll(name, atoms, coords, nil); err != nil {
		Te.Fatal(err)
	}
	traj, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	if !traj.Readable() {
		Te.Fatal("fresh stream is not readable")
	}
	if traj.Len() != 2 {
		Te.Errorf("expected 2 atoms per frame, got %d", traj.Len())
	}
	frame := v3.Zeros(traj.Len())
	read := 0
	for {
		err := traj.Next(frame)
		if err != nil {
			if _, ok := err.(interface{ NormalLastFrameTermination() }); ok {
				break
			}
			Te.Fatal(err)
		}
		if math.Abs(frame.At(1, 2)-float64(read)) > 1e-6 {
			Te.Errorf("frame %d: wrong z coordinate %f", read, frame.At(1, 2))
		}
		read++
	}
	if read != 2 {
		Te.Errorf("streamed %d frames, want 2", read)
	}
	if traj.Readable() {
		Te.Error("exhausted stream still claims to be readable")
	}
	if err := traj.Next(frame); err == nil {
		Te.Error("expected an error from a closed stream")
	}
	//a too-small destination is refused before anything is consumed, so a
	//retry with a proper matrix still starts at the first frame
	traj2, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer traj2.Close()
	small := v3.Zeros(1)
	if err := traj2.Next(small); err == nil {
		Te.Error("expected an error for a too-small destination matrix")
	}
	if err := traj2.Next(frame); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(frame.At(1, 2)) > 1e-6 {
		Te.Errorf("retry after a refused read is misaligned: z=%f", frame.At(1, 2))
	}
	if err := traj2.Next(frame); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(frame.At(1, 2)-1) > 1e-6 {
		Te.Errorf("second frame after a refused read is misaligned: z=%f", frame.At(1, 2))
	}
}
