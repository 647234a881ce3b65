// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults for the query region: the mitochondrial interval the tool was
// built to interrogate.
const (
	DefaultChromosome = "chrMT"
	DefaultStart      = 10761
	DefaultEnd        = 12137
)

// Default output names, created next to the input catalog.
const (
	DefaultReportName = "NUMT_overlap_results.xlsx"
	DefaultFigureName = "NUMT_overlap_visualization.png"
)

// Config is the root-level settings struct: a mix of settings available
// in an optional .numtscan.yaml and those from the command line.
type Config struct {
	// In is the path to the NUMT catalog workbook
	In string `mapstructure:"in"`

	// Out is the path the overlap report is written to
	Out string `mapstructure:"out"`

	// Figure is the path the track figure is written to
	Figure string `mapstructure:"figure"`

	// Chromosome is the query region's chromosome name
	Chromosome string `mapstructure:"chromosome"`

	// Start is the query region's first position, 1-based inclusive
	Start int `mapstructure:"start"`

	// End is the query region's last position, 1-based inclusive
	End int `mapstructure:"end"`

	// OverlappingOnly omits records without overlap from the report
	OverlappingOnly bool `mapstructure:"overlapping-only"`

	// SkipPlot skips rendering the figure
	SkipPlot bool `mapstructure:"skip-plot"`
}

// New returns a Config populated from Viper settings (bound command line
// flags and/or a settings file). Empty output paths default to the
// standard names next to the input catalog.
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, err
	}

	dir := filepath.Dir(c.In)
	if strings.TrimSpace(c.Out) == "" {
		c.Out = filepath.Join(dir, DefaultReportName)
	}
	if strings.TrimSpace(c.Figure) == "" {
		c.Figure = filepath.Join(dir, DefaultFigureName)
	}
	return c, nil
}
