package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/airfoil"
	"gonum.org/v1/gonum/spatial/r2"
)

// WriteDAT writes the section outline to w in the Selig coordinate file
// format: a free-form name line followed by one "x y" pair per line
// tracing the outline from the trailing edge over the upper surface to
// the leading edge and back along the lower surface. Coordinate files
// conventionally hold chord-normalized sections, i.e. sampled at chord 1.
func WriteDAT(w io.Writer, name string, c airfoil.Coordinates) error {
	if len(c) == 0 {
		return errors.New("empty coordinates")
	}
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		name = "unnamed airfoil"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, name)
	for _, v := range c.Outline() {
		fmt.Fprintf(bw, "%9.6f %9.6f\n", v.X, v.Y)
	}
	return bw.Flush()
}

// CreateDAT writes the section outline to a Selig format file at path.
func CreateDAT(path, name string, c airfoil.Coordinates) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return WriteDAT(fp, name, c)
}

// readDAT parses a Selig format coordinate file into the airfoil name and
// outline points. Blank lines are skipped.
func readDAT(r io.Reader) (name string, outline []r2.Vec, err error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return "", nil, errors.New("empty coordinate file")
	}
	name = strings.TrimSpace(sc.Text())
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return name, nil, fmt.Errorf("malformed coordinate line %q", sc.Text())
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return name, nil, err
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return name, nil, err
		}
		outline = append(outline, r2.Vec{X: x, Y: y})
	}
	return name, outline, sc.Err()
}
