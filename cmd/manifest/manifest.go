package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	mdb "github.com/skypies/manifestdb"
	"github.com/skypies/manifestdb/csvdata"
	"github.com/skypies/manifestdb/fpdf"
	"github.com/skypies/manifestdb/report"
	"github.com/skypies/manifestdb/source"
)

var (
	ctx = context.Background()

	fCsvFile  string
	fQuery    string
	fSurvived string
	fClass    string
	fSortBy   string
	fSortDir  string
	fPage     int
	fPerPage  int
	fPdfFile  string
)

func init() {
	flag.StringVar(&fCsvFile, "f", "", "load manifest from this CSV file (default: KBC_DATADIR / remote export)")
	flag.StringVar(&fQuery, "q", "", "list: substring match on name, hometown, destination")
	flag.StringVar(&fSurvived, "survived", "all", "list: all|survived|lost")
	flag.StringVar(&fClass, "cls", "all", "list: all|1|2|3")
	flag.StringVar(&fSortBy, "sort", "PassengerId", "list: sort field")
	flag.StringVar(&fSortDir, "dir", "asc", "list: asc|desc")
	flag.IntVar(&fPage, "page", 1, "list: page number")
	flag.IntVar(&fPerPage, "n", 20, "list: rows per page")
	flag.StringVar(&fPdfFile, "o", "summary.pdf", "pdf: output filename")
	flag.Parse()
}

func loadTable() *mdb.Table {
	if fCsvFile != "" {
		f, err := os.Open(fCsvFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		t, err := csvdata.ReadTable(f)
		if err != nil {
			log.Fatal(err)
		}
		return t
	}

	cfg := source.Config{
		DataDir:  os.Getenv("KBC_DATADIR"),
		Endpoint: os.Getenv("KBC_URL"),
		Token:    os.Getenv("KBC_TOKEN"),
		TableID:  os.Getenv("TABLE_ID"),
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://connection.keboola.com"
	}

	t, err := cfg.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}
	return t
}

// {{{ runSummary

func runSummary(t *mdb.Table) {
	s := report.Summarize(t)

	fmt.Printf("Passengers: %d (%d survived, %d lost)\n", s.Total, s.Survivors, s.Lost)
	fmt.Printf("Survival rate: %.1f%%\n", s.SurvRate)
	if s.AvgAge != nil {
		fmt.Printf("Avg age:  %.1f\n", *s.AvgAge)
	}
	if s.AvgFare != nil {
		fmt.Printf("Avg fare: £%.2f (max £%.2f)\n", *s.AvgFare, *s.MaxFare)
	}

	fmt.Printf("\nBy class:-\n")
	for _, c := range report.ByClass(t) {
		fmt.Printf("  %-12.12s %4d total, %4d survived (%d%%)\n", c.Label, c.Total, c.Survived, c.Pct)
	}

	fmt.Printf("\nBy gender:-\n")
	for _, g := range report.ByGender(t) {
		fmt.Printf("  %-12.12s %4d survived, %4d lost\n", g.Label, g.Survived, g.Lost)
	}

	fmt.Printf("\nBy port:-\n")
	for _, p := range report.ByPort(t) {
		fmt.Printf("  %-12.12s %4d boarded (%d%%)\n", p.Port, p.Count, p.Pct)
	}

	fmt.Printf("\nBy age group:-\n")
	for _, a := range report.ByAgeGroup(t) {
		fmt.Printf("  %-14.14s %4d total, %4d survived (%d%%)\n", a.Group, a.Total, a.Survived, a.Pct)
	}
}

// }}}
// {{{ runList

func runList(t *mdb.Table) {
	opt := report.ListOptions{
		Query:    fQuery,
		Survived: fSurvived,
		Class:    fClass,
		SortBy:   fSortBy,
		SortDir:  fSortDir,
		Page:     fPage,
		PerPage:  fPerPage,
	}

	list := report.ListPassengers(t, opt)

	fmt.Printf("Page %d/%d (%d matches)\n", list.Page, list.TotalPages, list.Total)
	for i, row := range list.Rows {
		status := "lost"
		if row.Survived != nil && *row.Survived == 1 {
			status = "survived"
		}
		age := "  ?"
		if row.Age != nil {
			age = fmt.Sprintf("%3.0f", *row.Age)
		}
		fmt.Printf("[%2d] %-40.40s %6.6s %s  %s\n", i, row.Name, row.Sex, age, status)
	}
}

// }}}
// {{{ runPdf

func runPdf(t *mdb.Table) {
	f, err := os.Create(fPdfFile)
	if err != nil {
		log.Fatal(err)
	}
	if err := fpdf.WriteSummary(f, t); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", fPdfFile)
}

// }}}
// {{{ runRoute

func runRoute() {
	for _, leg := range mdb.VoyageLegs() {
		fmt.Printf("%-12.12s -> %-12.12s %7.1f km (%6.1f nm)\n",
			leg.From.Name, leg.To.Name, leg.DistKM, leg.DistNM)
	}
}

// }}}

func main() {
	verb := "summary"
	if len(flag.Args()) > 0 {
		verb = flag.Args()[0]
	}

	switch verb {
	case "summary":
		runSummary(loadTable())
	case "list":
		runList(loadTable())
	case "pdf":
		runPdf(loadTable())
	case "route":
		runRoute()
	default:
		log.Fatalf("unknown verb '%s' (want summary|list|pdf|route)", verb)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
