// Command sigreport analyzes process signal spreadsheets in batch mode.
//
// Usage:
//
//	sigreport [flags] -in data.xlsx
//
// Without -signals it lists the discovered signals with summary statistics.
// With three comma-separated signal names it writes the analysis grid and
// frequency polygon PNGs plus the 3D scatter payload as JSON.
//
// Examples:
//
//	sigreport -in data.xlsx -list
//	sigreport -in data.xlsx -sheet Sheet2 -list
//	sigreport -in data.csv -signals Pressure,Flow,Level -out report
//	sigreport -in data.xlsx -signals P1,P2,P3 -window 9 -bins 40 -out report
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/AmitVSingh/process-signals-dashboard/dataset"
	"github.com/AmitVSingh/process-signals-dashboard/render"
	"github.com/AmitVSingh/process-signals-dashboard/stats/summary"
)

func main() {
	in := flag.String("in", "", "input spreadsheet (.xlsx or .csv)")
	sheet := flag.String("sheet", "", "XLSX sheet name (default: first sheet)")
	signals := flag.String("signals", "", "three comma-separated signal names to analyze")
	window := flag.Int("window", 5, "moving-average window in samples")
	bins := flag.Int("bins", 30, "histogram bin count")
	out := flag.String("out", "report", "output file prefix")
	list := flag.Bool("list", false, "list discovered signals and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sigreport [flags] -in data.xlsx\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes process signal spreadsheets.\n")
		fmt.Fprintf(os.Stderr, "Without -signals, lists the discovered signals.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sigreport -in data.xlsx -list\n")
		fmt.Fprintf(os.Stderr, "  sigreport -in data.csv -signals Pressure,Flow,Level -out report\n")
	}
	flag.Parse()

	if *in == "" {
		fmt.Fprintf(os.Stderr, "error: -in is required\n")
		flag.Usage()
		os.Exit(1)
	}

	ds, err := load(*in, *sheet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *list || *signals == "" {
		if err := printSignals(ds); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	names := splitNames(*signals)
	if err := writeReport(ds, names, *window, *bins, *out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func load(path, sheet string) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		if sheet != "" {
			return dataset.LoadXLSXSheet(path, sheet)
		}
		return dataset.LoadXLSX(path)
	case ".csv":
		return dataset.LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .xlsx or .csv)", path)
	}
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printSignals(ds *dataset.Dataset) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Signal\tSamples\tMean\tMin\tMax\tStd Dev\tTime Column\n")
	fmt.Fprintf(tw, "------\t-------\t----\t---\t---\t-------\t-----------\n")

	for _, ref := range ds.Signals() {
		series, err := ds.Get(ref.Name)
		if err != nil {
			return err
		}
		st := summary.Calculate(series.Value)

		timeCol := ref.TimeColumn
		if timeCol == "" {
			timeCol = "(row index)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%s\n",
			ref.Name, st.Length, st.Mean, st.Min, st.Max, st.StdDev, timeCol)
	}

	return tw.Flush()
}

func writeReport(ds *dataset.Dataset, names []string, window, bins int, prefix string) error {
	rows, err := render.BuildRows(ds, names, window)
	if err != nil {
		return err
	}

	grid, err := render.Grid3x3PNG(rows, bins)
	if err != nil {
		return err
	}
	if err := os.WriteFile(prefix+"_grid.png", grid, 0o644); err != nil {
		return err
	}

	polygon, err := render.FrequencyPolygonPNG(rows, bins)
	if err != nil {
		return err
	}
	if err := os.WriteFile(prefix+"_polygon.png", polygon, 0o644); err != nil {
		return err
	}

	scatter, err := render.BuildScatter3D(rows)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(scatter, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(prefix+"_scatter3d.json", payload, 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %s_grid.png, %s_polygon.png, %s_scatter3d.json\n", prefix, prefix, prefix)
	return nil
}
