package main

import (
	"fmt"
	"os"

	"github.com/diillson/evcc-charging-report/internal/adapter/driven/config"
	"github.com/diillson/evcc-charging-report/internal/adapter/driven/evcc"
	"github.com/diillson/evcc-charging-report/internal/adapter/driven/export"
	"github.com/diillson/evcc-charging-report/internal/adapter/driven/mail"
	"github.com/diillson/evcc-charging-report/internal/adapter/driven/render"
	"github.com/diillson/evcc-charging-report/internal/adapter/driving/cli"
	"github.com/diillson/evcc-charging-report/internal/application/usecase"
	"github.com/diillson/evcc-charging-report/pkg/console"
	"github.com/diillson/evcc-charging-report/pkg/logging"
	"github.com/diillson/evcc-charging-report/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	logger, err := logging.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		configRepo,
		exportRepo,
		consoleImpl,
		logger,
		usecase.Collaborators{
			NewSessionRepo: evcc.NewSessionRepository,
			NewRenderer:    render.NewEngine,
			NewNotifier:    mail.NewSMTPNotifier,
		},
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReportUseCase(reportUseCase)

	// Executa o aplicativo. Falhas de fetch/autenticação terminam com
	// código 1; um período sem sessões termina normalmente com 0.
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
