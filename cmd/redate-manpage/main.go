package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/redate/cmd/redate"
	"github.com/arthur-debert/redate/internal/version"
)

func main() {
	rootCmd := redate.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "REDATE",
		Section: "1",
		Source:  "redate " + version.Version,
		Manual:  "redate manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
