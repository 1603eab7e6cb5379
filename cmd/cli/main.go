package main

import (
	"fmt"
	"os"

	"github.com/clientlens/reportgen/pkg/export/pdf"
	"github.com/clientlens/reportgen/pkg/runtime/terminal"
	"github.com/clientlens/reportgen/pkg/services/registry"
	reportsvc "github.com/clientlens/reportgen/pkg/services/report"
)

func main() {
	catalog := registry.NewPredefined()

	cli := terminal.NewCLI(terminal.Options{
		Service: reportsvc.NewService(catalog, pdf.NewRenderer(), reportsvc.Config{}),
		Catalog: catalog,
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
