package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd generates Markdown documentation for every command.
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Generate Markdown docs for the numtscan commands",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}
		return doc.GenMarkdownTree(RootCmd, dir)
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
