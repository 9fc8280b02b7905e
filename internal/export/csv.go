package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/strange/internal/dynamo"
)

// WriteCSV streams the trajectory as two columns, x and y, one row per
// sample in iteration order.
func WriteCSV(w io.Writer, t *dynamo.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}

	row := make([]string, 2)
	for i := range t.X {
		row[0] = strconv.FormatFloat(t.X[i], 'f', 6, 64)
		row[1] = strconv.FormatFloat(t.Y[i], 'f', 6, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
