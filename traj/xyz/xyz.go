//Package xyz implements reading and writing of multi-frame xyz trajectory
//files. Each frame is a block of an atom-count line, a free-text header
//line, and one "label x y z" line per atom; frames follow each other with
//no separators. Files whose name ends in .gz or .zst are transparently
//(de)compressed.
package xyz

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/angstromgo/angstrom/v3"
	"github.com/klauspost/compress/zstd"
)

//coordFormat is the numeric format used on write: fixed-point with 6
//decimals, which round-trips through ReadAll within 1e-6.
const coordFormat = "%-2s %12.6f %12.6f %12.6f\n"

//zstdql adapts *zstd.Decoder, whose Close returns nothing, to io.ReadCloser.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (s zstdql) Close() error {
	s.closeql()
	return nil
}

//newReader returns a reader for f, decompressing according to the
//extension of name. The returned closer is nil for plain files.
func newReader(name string, f *os.File) (io.Reader, io.Closer, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		return r, r, nil
	case ".zst":
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		ql := zstdql{r.Close, r}
		return ql, ql, nil
	default:
		return f, nil, nil
	}
}

//newWriter is the write-side counterpart of newReader.
func newWriter(name string, f *os.File) (io.Writer, io.Closer, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		w := gzip.NewWriter(f)
		return w, w, nil
	case ".zst":
		w, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, nil, err
		}
		return w, w, nil
	default:
		return f, nil, nil
	}
}

//parseCount parses an atom-count line. The count must be a positive
//integer alone on its line.
func parseCount(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("atom count line %q does not parse as an integer", strings.TrimSpace(line))
	}
	if n <= 0 {
		return 0, fmt.Errorf("atom count %d is not positive", n)
	}
	return n, nil
}

//parseAtomLine parses a "label x y z" line, tolerating any amount of
//whitespace between fields.
func parseAtomLine(line string) (string, [3]float64, error) {
	var coords [3]float64
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return "", coords, fmt.Errorf("expected label and 3 coordinates, got %d fields in %q", len(fields), strings.TrimSpace(line))
	}
	for i, v := range fields[1:] {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", coords, fmt.Errorf("coordinate %d (%q) does not parse as a float", i, v)
		}
		coords[i] = f
	}
	return fields[0], coords, nil
}

//ReadAll reads the whole trajectory file name and returns the per-frame
//atom labels, coordinates and header lines, all of the same length (the
//frame count). Malformed content fails with an Error carrying the file
//name, frame and line; the file handle is released on every path.
func ReadAll(name string) ([][]string, []*v3.Matrix, []string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"ReadAll"}, true}
	}
	defer f.Close()
	raw, closer, err := newReader(name, f)
	if err != nil {
		return nil, nil, nil, Error{"Can't read compressed file: " + err.Error(), name, []string{"ReadAll"}, true}
	}
	if closer != nil {
		defer closer.Close()
	}
	r := bufio.NewReader(raw)
	var atoms [][]string
	var coords []*v3.Matrix
	var headers []string
	line := 0
	for frame := 0; ; frame++ {
		countline, err := r.ReadString('\n')
		line++
		if err != nil {
			if err == io.EOF && strings.TrimSpace(countline) == "" {
				break //normal end of trajectory
			}
			if err != io.EOF {
				return nil, nil, nil, Error{err.Error(), name, []string{"ReadAll"}, true}
			}
		}
		natoms, cerr := parseCount(countline)
		if cerr != nil {
			return nil, nil, nil, Error{fmt.Sprintf("frame %d, line %d: %s", frame, line, cerr.Error()), name, []string{"ReadAll"}, true}
		}
		header, err := r.ReadString('\n')
		line++
		if err != nil && err != io.EOF {
			return nil, nil, nil, Error{err.Error(), name, []string{"ReadAll"}, true}
		}
		if err == io.EOF && header == "" {
			return nil, nil, nil, Error{fmt.Sprintf("frame %d: file ends before the header line", frame), name, []string{"ReadAll"}, true}
		}
		frameAtoms := make([]string, natoms)
		data := make([]float64, natoms*3)
		for i := 0; i < natoms; i++ {
			atomline, err := r.ReadString('\n')
			line++
			if err != nil && !(err == io.EOF && strings.TrimSpace(atomline) != "") {
				return nil, nil, nil, Error{fmt.Sprintf("frame %d declares %d atoms but ends after %d coordinate lines", frame, natoms, i), name, []string{"ReadAll"}, true}
			}
			label, c, aerr := parseAtomLine(atomline)
			if aerr != nil {
				return nil, nil, nil, Error{fmt.Sprintf("frame %d, line %d: %s", frame, line, aerr.Error()), name, []string{"ReadAll"}, true}
			}
			frameAtoms[i] = label
			copy(data[i*3:i*3+3], c[:])
		}
		m, merr := v3.NewMatrix(data)
		if merr != nil {
			return nil, nil, nil, Error{merr.Error(), name, []string{"ReadAll"}, true}
		}
		atoms = append(atoms, frameAtoms)
		coords = append(coords, m)
		headers = append(headers, strings.TrimRight(header, "\r\n"))
	}
	return atoms, coords, headers, nil
}

//WriteAll writes a whole trajectory to the file name, overwriting it if it
//exists. headers may be nil, in which case a "frame <i>" default is
//synthesized per frame; a non-nil headers slice must have one entry per
//frame. The write is atomic: content goes to a temporary file in the
//target directory which is renamed over name only on success, so a failed
//write never leaves a partial file behind.
func WriteAll(name string, atoms [][]string, coords []*v3.Matrix, headers []string) error {
	if len(atoms) != len(coords) {
		return Error{fmt.Sprintf("mismatched frame counts: %d atom frames, %d coordinate frames", len(atoms), len(coords)), name, []string{"WriteAll"}, true}
	}
	if headers != nil && len(headers) != len(atoms) {
		return Error{fmt.Sprintf("got %d headers for %d frames", len(headers), len(atoms)), name, []string{"WriteAll"}, true}
	}
	for f := range atoms {
		if coords[f] == nil || len(atoms[f]) != coords[f].NVecs() {
			return Error{fmt.Sprintf("frame %d: inconsistent atoms and coordinates", f), name, []string{"WriteAll"}, true}
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp-")
	if err != nil {
		return Error{err.Error(), name, []string{"WriteAll"}, true}
	}
	ok := false
	defer func() {
		if !ok {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	raw, closer, err := newWriter(name, tmp)
	if err != nil {
		return Error{err.Error(), name, []string{"WriteAll"}, true}
	}
	w := bufio.NewWriter(raw)
	for f := range atoms {
		header := fmt.Sprintf("frame %d", f)
		if headers != nil {
			header = headers[f]
		}
		fmt.Fprintf(w, "%d\n", len(atoms[f]))
		fmt.Fprintf(w, "%s\n", header)
		for i, label := range atoms[f] {
			_, err = fmt.Fprintf(w, coordFormat, label, coords[f].At(i, 0), coords[f].At(i, 1), coords[f].At(i, 2))
			if err != nil {
				return Error{err.Error(), name, []string{"WriteAll"}, true}
			}
		}
	}
	if err := w.Flush(); err != nil {
		return Error{err.Error(), name, []string{"WriteAll"}, true}
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return Error{err.Error(), name, []string{"WriteAll"}, true}
		}
	}
	if err := tmp.Close(); err != nil {
		return Error{err.Error(), name, []string{"WriteAll"}, true}
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return Error{err.Error(), name, []string{"WriteAll"}, true}
	}
	ok = true
	return nil
}
