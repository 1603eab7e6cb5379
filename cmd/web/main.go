package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clientlens/reportgen/pkg/export/pdf"
	"github.com/clientlens/reportgen/pkg/server"
	"github.com/clientlens/reportgen/pkg/services/registry"
	reportsvc "github.com/clientlens/reportgen/pkg/services/report"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report generation web server",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	catalog := registry.NewPredefined()
	service := reportsvc.NewService(catalog, pdf.NewRenderer(), reportsvc.Config{})

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Reports: service,
			Catalog: catalog,
		},
	})

	return api.Start()
}
