package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clientlens/reportgen/pkg/runtime/terminal/commands"
	"github.com/clientlens/reportgen/pkg/runtime/terminal/export"
	reportsvc "github.com/clientlens/reportgen/pkg/services/report"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

// CLI represents the command-line interface
type CLI struct {
	service  reportsvc.Service
	catalog  registry.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service reportsvc.Service
	Catalog registry.Registry
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		service:  opts.Service,
		catalog:  opts.Catalog,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reportgen",
		Short: "Client analytics report generator",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.service, cli.reporter))
	cmd.AddCommand(commands.NewMetricsCmd(cli.catalog, cli.reporter))

	return cmd
}
