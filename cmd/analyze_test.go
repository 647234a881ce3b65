package cmd

import (
	"bytes"
	"testing"
)

// execute runs the root command against args and returns its error.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func Test_analyze_requiresInput(t *testing.T) {
	if err := execute(t, "analyze"); err == nil {
		t.Fatal("expected an error without an input catalog")
	}
}

func Test_analyze_rejectsInvertedQuery(t *testing.T) {
	err := execute(t, "analyze", "-i", "numts.xlsx", "-s", "12137", "-e", "10761")
	if err == nil {
		t.Fatal("expected an error for start > end")
	}
}

func Test_analyze_rejectsZeroStart(t *testing.T) {
	err := execute(t, "analyze", "-i", "numts.xlsx", "-s", "0", "-e", "100")
	if err == nil {
		t.Fatal("expected an error for a 0-based start")
	}
}
