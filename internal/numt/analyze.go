package numt

import (
	"io"
	"log"
	"os"

	"numtscan/config"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Analyze runs the whole pipeline against one catalog: load, classify,
// summarize to out, write the report, render the figure. Each run is
// independent; nothing is kept between invocations. The first error
// aborts the run, partial results are never a success.
func Analyze(out io.Writer, conf config.Config) error {
	q := QueryRegion{
		Chrom: conf.Chromosome,
		Start: conf.Start,
		End:   conf.End,
	}

	records, err := ReadCatalog(conf.In)
	if err != nil {
		return err
	}
	stderr.Printf("read %d NUMT records from %s", len(records), conf.In)

	overlaps, err := ClassifyAll(q, records)
	if err != nil {
		return err
	}

	s := Summarize(q, overlaps)
	if _, err := io.WriteString(out, FormatSummary(q, records, overlaps, s)); err != nil {
		return err
	}

	if err := WriteReport(conf.Out, overlaps, conf.OverlappingOnly); err != nil {
		return err
	}
	stderr.Printf("report written to %s", conf.Out)

	if conf.SkipPlot {
		return nil
	}
	if s.TotalOverlaps == 0 {
		stderr.Printf("no overlaps found, skipping the figure")
		return nil
	}
	if err := RenderFigure(conf.Figure, q, records, overlaps); err != nil {
		return err
	}
	stderr.Printf("figure written to %s", conf.Figure)

	return nil
}
