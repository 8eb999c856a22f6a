package main

import (
	"flag"
	"log"

	"bahikhata/internal/export"
	"bahikhata/internal/service"
)

// Writes the current TDS/TCS rate card to an Excel workbook so the
// finance team can review rates without hitting the API.
func main() {
	out := flag.String("out", "ratecard.xlsx", "output workbook path")
	flag.Parse()

	taxSvc := service.NewTaxService()
	tds, tcs := taxSvc.RateCard()

	f, err := export.RateCardWorkbook(tds, tcs)
	if err != nil {
		log.Fatalf("build workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("save workbook: %v", err)
	}
	log.Printf("Wrote %d TDS and %d TCS sections to %s", len(tds), len(tcs), *out)
}
