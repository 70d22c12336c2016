package simulation

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"keynes-cross/internal/model"
)

// WriteCurvesCSV writes one row per grid point with every curve as a column.
func WriteCurvesCSV(out io.Writer, r *Result) error {
	w := csv.NewWriter(out)

	header := []string{"index", "income"}
	for _, c := range r.Curves {
		header = append(header, columnName(c.Label))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, y := range r.Grid {
		row := []string{strconv.Itoa(i), fmtFloat(y)}
		for _, c := range r.Curves {
			row = append(row, fmtFloat(c.Points[i].Demand))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteEquilibriaCSV writes one row per curve label. NotFound rows leave
// income and demand empty.
func WriteEquilibriaCSV(out io.Writer, r *Result) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"label", "found", "income", "demand"}); err != nil {
		return err
	}
	for _, e := range r.Equilibria {
		row := []string{string(e.Label), strconv.FormatBool(e.Found), "", ""}
		if e.Found {
			row[2] = fmtFloat(e.Point.Income)
			row[3] = fmtFloat(e.Point.Demand)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// SaveCurvesCSV writes the curves CSV to path, creating parent directories.
func SaveCurvesCSV(path string, r *Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteCurvesCSV(f, r)
}

func columnName(l model.Label) string {
	switch l {
	case model.LabelC:
		return "c"
	case model.LabelCI:
		return "c_i"
	case model.LabelCIG:
		return "c_i_g"
	case model.LabelCIGNX:
		return "c_i_g_nx"
	}
	return string(l)
}

func fmtFloat(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(6)
}
