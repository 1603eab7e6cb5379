package commands

import (
	"github.com/spf13/cobra"

	"github.com/clientlens/reportgen/pkg/adapters"
	"github.com/clientlens/reportgen/pkg/models/api"
	"github.com/clientlens/reportgen/pkg/runtime/terminal/export"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

type MetricsCmd struct {
	catalog  registry.Registry
	reporter *export.Reporter
}

func NewMetricsCmd(catalog registry.Registry, reporter *export.Reporter) *cobra.Command {
	mc := &MetricsCmd{catalog: catalog, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "List the predefined metric catalog",
		RunE:  mc.run,
	}
	return cmd
}

func (mc *MetricsCmd) run(cmd *cobra.Command, args []string) error {
	var metrics []api.Metric
	for _, id := range mc.catalog.IDs() {
		if d, ok := mc.catalog.Lookup(id); ok {
			metrics = append(metrics, adapters.MapMetricDescriptorDomainToApi(d))
		}
	}
	return mc.reporter.HandleCatalog(metrics)
}
