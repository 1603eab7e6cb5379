package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/clientlens/reportgen/pkg/models/api"
	"github.com/clientlens/reportgen/pkg/models/domain"
)

type TableConfig struct {
	IDWidth     int
	LabelWidth  int
	SourceWidth int
	UnitWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		IDWidth:     26,
		LabelWidth:  32,
		SourceWidth: 12,
		UnitWidth:   12,
	}
}

// Reporter prints catalog listings and generation summaries to a
// terminal
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// HandleCatalog renders the metric catalog as a table
func (c *Reporter) HandleCatalog(metrics []api.Metric) error {
	funcMap := template.FuncMap{
		"formatRow": func(id, label, source, unit string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.IDWidth, id,
				c.config.LabelWidth, label,
				c.config.SourceWidth, source,
				c.config.UnitWidth, unit)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.IDWidth+2),
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.SourceWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2))
		},
	}

	tmpl := `
Metric Catalog ({{len .}} metrics)

{{separator}}
{{formatRow "ID" "Label" "Source" "Unit"}}
{{separator}}
{{range .}}{{formatRow .ID .Label .Source .Unit}}
{{end}}{{separator}}
`

	t, err := template.New("catalog").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, metrics)
}

// HandleResult prints a one-line generation summary
func (c *Reporter) HandleResult(result domain.ReportResult, outPath string) error {
	_, err := fmt.Fprintf(c.writer,
		"Report %s written to %s (%d pages, %d bytes)\n",
		result.ID, outPath, result.Plan.TotalPages, len(result.Document))
	return err
}
