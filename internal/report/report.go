// Package report renders solver and convergence results for humans and
// downstream tools: aligned text tables, CSV profiles, and JSON records.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/pillarlab/radiff/internal/convergence"
)

// WriteTable writes the convergence record as an aligned text table, one row
// per refinement level. Order estimates describe the step from the previous
// level, so the first row shows none.
func WriteTable(w io.Writer, rec *convergence.Record) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "N\tdr\tL1\tL2\tLinf\tp(L1)\tp(L2)\tp(Linf)")
	for k := 0; k < rec.Levels(); k++ {
		if k == 0 {
			fmt.Fprintf(tw, "%d\t%.6g\t%.4e\t%.4e\t%.4e\t-\t-\t-\n",
				rec.N[k], rec.Dr[k], rec.L1[k], rec.L2[k], rec.Linf[k])
			continue
		}
		fmt.Fprintf(tw, "%d\t%.6g\t%.4e\t%.4e\t%.4e\t%s\t%s\t%s\n",
			rec.N[k], rec.Dr[k], rec.L1[k], rec.L2[k], rec.Linf[k],
			fmtOrder(rec.OrderL1[k-1]), fmtOrder(rec.OrderL2[k-1]), fmtOrder(rec.OrderLinf[k-1]))
	}
	return tw.Flush()
}

func fmtOrder(p float64) string {
	if math.IsNaN(p) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", p)
}

// WriteProfileCSV writes co-indexed r, numerical and analytical columns.
func WriteProfileCSV(w io.Writer, r, numerical, analytical []float64) error {
	if len(r) != len(numerical) || len(r) != len(analytical) {
		return fmt.Errorf("profile columns must be co-indexed: %d/%d/%d points",
			len(r), len(numerical), len(analytical))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"r", "numerical", "analytical"}); err != nil {
		return err
	}
	for i := range r {
		row := []string{
			strconv.FormatFloat(r[i], 'g', -1, 64),
			strconv.FormatFloat(numerical[i], 'g', -1, 64),
			strconv.FormatFloat(analytical[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRecordCSV writes one row per refinement level with the same columns
// as the text table.
func WriteRecordCSV(w io.Writer, rec *convergence.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"N", "dr", "L1", "L2", "Linf", "order_L1", "order_L2", "order_Linf"}); err != nil {
		return err
	}
	for k := 0; k < rec.Levels(); k++ {
		row := []string{
			strconv.Itoa(rec.N[k]),
			strconv.FormatFloat(rec.Dr[k], 'g', -1, 64),
			strconv.FormatFloat(rec.L1[k], 'g', -1, 64),
			strconv.FormatFloat(rec.L2[k], 'g', -1, 64),
			strconv.FormatFloat(rec.Linf[k], 'g', -1, 64),
		}
		if k == 0 {
			row = append(row, "", "", "")
		} else {
			row = append(row,
				csvOrder(rec.OrderL1[k-1]), csvOrder(rec.OrderL2[k-1]), csvOrder(rec.OrderLinf[k-1]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvOrder(p float64) string {
	if math.IsNaN(p) {
		return "nan"
	}
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// recordJSON mirrors Record with nullable order entries: encoding/json
// rejects NaN, and degenerate order estimates are NaN by contract.
type recordJSON struct {
	Scheme    string     `json:"scheme"`
	N         []int      `json:"N"`
	Dr        []float64  `json:"dr"`
	L1        []float64  `json:"L1"`
	L2        []float64  `json:"L2"`
	Linf      []float64  `json:"Linf"`
	OrderL1   []*float64 `json:"order_L1"`
	OrderL2   []*float64 `json:"order_L2"`
	OrderLinf []*float64 `json:"order_Linf"`
}

// WriteRecordJSON writes the record as indented JSON. NaN order estimates
// serialize as null.
func WriteRecordJSON(w io.Writer, rec *convergence.Record) error {
	out := recordJSON{
		Scheme:    rec.Scheme.String(),
		N:         rec.N,
		Dr:        rec.Dr,
		L1:        rec.L1,
		L2:        rec.L2,
		Linf:      rec.Linf,
		OrderL1:   nullableOrders(rec.OrderL1),
		OrderL2:   nullableOrders(rec.OrderL2),
		OrderLinf: nullableOrders(rec.OrderLinf),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func nullableOrders(orders []float64) []*float64 {
	out := make([]*float64, len(orders))
	for i, p := range orders {
		if math.IsNaN(p) {
			continue
		}
		v := p
		out[i] = &v
	}
	return out
}
