package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clientlens/reportgen/pkg/adapters"
	"github.com/clientlens/reportgen/pkg/models/api"
	"github.com/clientlens/reportgen/pkg/runtime/terminal/export"
	"github.com/clientlens/reportgen/pkg/services/config"
	reportsvc "github.com/clientlens/reportgen/pkg/services/report"
)

type GenerateCmd struct {
	requestPath  string
	outPath      string
	profile      string
	brandingPath string
	service      reportsvc.Service
	reporter     *export.Reporter
}

func NewGenerateCmd(service reportsvc.Service, reporter *export.Reporter) *cobra.Command {
	gc := &GenerateCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an analytics report PDF",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.requestPath, "request", "", "Path to the report request file (yaml or json)")
	cmd.Flags().StringVar(&gc.outPath, "out", "report.pdf", "Output path for the rendered PDF")
	cmd.Flags().StringVar(&gc.profile, "profile", "", "Branding profile name to merge into the request")
	cmd.Flags().StringVar(&gc.brandingPath, "branding", "", "Path to the branding profiles file")

	_ = cmd.MarkFlagRequired("request")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	apiReq, err := loadRequest(gc.requestPath)
	if err != nil {
		return err
	}

	req, err := adapters.MapReportRequestApiToDomain(apiReq)
	if err != nil {
		return fmt.Errorf("invalid request file: %w", err)
	}

	if gc.profile != "" {
		if gc.brandingPath == "" {
			return fmt.Errorf("--profile requires --branding")
		}
		registry, err := config.NewRegistry(gc.brandingPath)
		if err != nil {
			return fmt.Errorf("failed to load branding profiles: %w", err)
		}
		branding, err := registry.GetBranding(ctx, gc.profile)
		if err != nil {
			return err
		}
		req.Branding = branding
	}

	result := gc.service.Generate(ctx, req)
	if !result.Success {
		return fmt.Errorf("%s: %s", result.ErrorKind, result.Message)
	}

	if err := os.WriteFile(gc.outPath, result.Document, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", gc.outPath, err)
	}

	return gc.reporter.HandleResult(result, gc.outPath)
}

func loadRequest(path string) (api.ReportRequest, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return api.ReportRequest{}, fmt.Errorf("failed to read request file: %w", err)
	}

	var req api.ReportRequest
	if err := v.Unmarshal(&req); err != nil {
		return api.ReportRequest{}, fmt.Errorf("failed to parse request file: %w", err)
	}
	return req, nil
}
