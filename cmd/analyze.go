package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"numtscan/config"
	"numtscan/internal/numt"
)

// analyzeCmd classifies every catalog record against the query region.
var analyzeCmd = &cobra.Command{
	Use:                        "analyze",
	Short:                      "Classify catalog NUMTs by their overlap with the query region",
	SuggestionsMinimumDistance: 3,
	SilenceUsage:               true,
	Long: `
Read a NUMT catalog spreadsheet and compute, for every record, its overlap
with the query region on the mitochondrial reference. Each overlap is
classified as Complete, Partial (Left), Partial (Right), Internal or None.

Outputs: a summary on stdout, a spreadsheet report with one row per record,
and a figure with the query region and each overlapping NUMT drawn as a
horizontal track (colored by overlap type)`,
	Example: "  numtscan analyze -i numts.xlsx -s 10761 -e 12137",
	RunE:    runAnalyze,
}

// set flags
func init() {
	analyzeCmd.Flags().StringP("in", "i", "", "input NUMT catalog (.xlsx)")
	analyzeCmd.Flags().StringP("out", "o", "", "output report file name (default: next to the input)")
	analyzeCmd.Flags().StringP("figure", "f", "", "output figure file name (default: next to the input)")
	analyzeCmd.Flags().StringP("chromosome", "c", config.DefaultChromosome, "query chromosome name")
	analyzeCmd.Flags().IntP("start", "s", config.DefaultStart, "query start position (1-based, inclusive)")
	analyzeCmd.Flags().IntP("end", "e", config.DefaultEnd, "query end position (1-based, inclusive)")
	analyzeCmd.Flags().Bool("overlapping-only", false, "omit records without overlap from the report")
	analyzeCmd.Flags().Bool("skip-plot", false, "do not render the figure")

	// Bind the parameters to viper
	viper.BindPFlag("in", analyzeCmd.Flags().Lookup("in"))
	viper.BindPFlag("out", analyzeCmd.Flags().Lookup("out"))
	viper.BindPFlag("figure", analyzeCmd.Flags().Lookup("figure"))
	viper.BindPFlag("chromosome", analyzeCmd.Flags().Lookup("chromosome"))
	viper.BindPFlag("start", analyzeCmd.Flags().Lookup("start"))
	viper.BindPFlag("end", analyzeCmd.Flags().Lookup("end"))
	viper.BindPFlag("overlapping-only", analyzeCmd.Flags().Lookup("overlapping-only"))
	viper.BindPFlag("skip-plot", analyzeCmd.Flags().Lookup("skip-plot"))

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	if conf.In == "" {
		return fmt.Errorf("no input catalog: pass one with -i")
	}
	if conf.Start < 1 {
		return fmt.Errorf("query start %d: positions are 1-based", conf.Start)
	}
	if conf.Start > conf.End {
		return fmt.Errorf("query start %d is after its end %d", conf.Start, conf.End)
	}

	return numt.Analyze(cmd.OutOrStdout(), conf)
}
