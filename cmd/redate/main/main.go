package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/redate/cmd/redate"
	"github.com/arthur-debert/redate/pkg/ui/styles"
)

func main() {
	rootCmd := redate.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Default().Render("Error", "Error: "+err.Error()))
		os.Exit(1)
	}
}
