package render

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soypat/airfoil"
)

// WriteCSV writes the surface as a table with one row per station and
// columns x_upper, y_upper, x_lower, y_lower in station order.
func WriteCSV(w io.Writer, c airfoil.Coordinates) error {
	if len(c) == 0 {
		return errors.New("empty coordinates")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x_upper", "y_upper", "x_lower", "y_lower"}); err != nil {
		return err
	}
	row := make([]string, 4)
	for _, st := range c {
		row[0] = fmt.Sprintf("%f", st.Upper.X)
		row[1] = fmt.Sprintf("%f", st.Upper.Y)
		row[2] = fmt.Sprintf("%f", st.Lower.X)
		row[3] = fmt.Sprintf("%f", st.Lower.Y)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CreateCSV writes the surface table to a CSV file at path.
func CreateCSV(path string, c airfoil.Coordinates) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return WriteCSV(fp, c)
}
