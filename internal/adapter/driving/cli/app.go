package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/diillson/evcc-charging-report/internal/application/usecase"
	"github.com/diillson/evcc-charging-report/internal/shared/types"
	"github.com/diillson/evcc-charging-report/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "evcc-report",
		Short:   "EVCC Charging Report CLI",
		Long:    "Generates a monthly PDF report of EV charging sessions from an evcc instance and optionally emails it.",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "EVCC Charging Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().Int("year", 0, "Year for the report (e.g., 2023); defaults to the previous month")
	rootCmd.PersistentFlags().Int("month", 0, "Month for the report (1-12); defaults to the previous month")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: ./output)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Report types to produce: pdf, csv, json (default: pdf)")
	rootCmd.PersistentFlags().StringP("engine", "e", "", "PDF engine: native or html (default: native)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct. The year
// and month stay nil when their flags were not given, so the use case can
// fall back to the previous calendar month.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	dir, _ := flags.GetString("dir")
	reportType, _ := flags.GetStringSlice("report-type")
	engine, _ := flags.GetString("engine")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		Dir:        dir,
		ReportType: reportType,
		Engine:     engine,
	}

	if flags.Changed("year") {
		year, _ := flags.GetInt("year")
		args.Year = &year
	}
	if flags.Changed("month") {
		month, _ := flags.GetInt("month")
		args.Month = &month
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	err = app.reportUseCase.RunReport(ctx, cliArgs)
	// A month without sessions is a graceful no-op, not a failure.
	if errors.Is(err, types.ErrNoChargingData) {
		return nil
	}
	return err
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
