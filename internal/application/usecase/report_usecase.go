package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/diillson/evcc-charging-report/internal/domain/entity"
	"github.com/diillson/evcc-charging-report/internal/domain/repository"
	"github.com/diillson/evcc-charging-report/internal/shared/types"
	"github.com/diillson/evcc-charging-report/pkg/localize"
)

// Collaborators groups the factories for the adapters whose construction
// depends on loaded configuration. main wires the real adapters; tests
// substitute fakes.
type Collaborators struct {
	NewSessionRepo func(baseURL, password string, logger *zap.Logger) repository.SessionRepository
	NewRenderer    func(engine string) (repository.ReportRenderer, error)
	NewNotifier    func(cfg *types.Config, logger *zap.Logger) repository.Notifier
}

// ReportUseCase handles the main reporting pipeline: fetch, normalize,
// format, render, export, notify.
type ReportUseCase struct {
	configRepo    repository.ConfigRepository
	exportRepo    repository.ExportRepository
	console       types.ConsoleInterface
	logger        *zap.Logger
	collaborators Collaborators

	now func() time.Time
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	logger *zap.Logger,
	collaborators Collaborators,
) *ReportUseCase {
	return &ReportUseCase{
		configRepo:    configRepo,
		exportRepo:    exportRepo,
		console:       console,
		logger:        logger,
		collaborators: collaborators,
		now:           time.Now,
	}
}

// RunReport executa o pipeline completo para um período.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.configRepo.Load(args.ConfigFile)
	if err != nil {
		return err
	}
	applyArgs(cfg, args)

	loc, err := localize.New(cfg.Locale)
	if err != nil {
		uc.console.LogWarning("Locale '%s' not recognized. Defaulting to 'en_US'.", cfg.Locale)
		loc = localize.Default()
	}

	period, err := resolvePeriod(args, uc.now())
	if err != nil {
		return err
	}

	uc.logger.Info("starting report", zap.String("period", period.String()))
	uc.console.LogInfo("Generating charging report for %s", period.String())

	sessionRepo := uc.collaborators.NewSessionRepo(cfg.EvccURL, cfg.EvccPassword, uc.logger)
	raw, err := sessionRepo.FetchSessions(ctx, period, loc.Language)
	if err != nil {
		uc.console.LogError("Could not fetch data: %v", err)
		return err
	}

	table := Normalize(raw)
	if table.Empty() {
		uc.logger.Info("no charging sessions found for the period, nothing to report")
		uc.console.LogInfo("No charging sessions found for %s. No report will be created.", period.String())
		return types.ErrNoChargingData
	}

	rows, totals := Format(table, loc)
	doc := uc.buildRenderContext(cfg, loc, period, table, rows, totals)

	renderer, err := uc.collaborators.NewRenderer(cfg.Engine)
	if err != nil {
		uc.console.LogError("Report rendering failed: %v", err)
		uc.logger.Error("render setup failed", zap.Error(err))
		return nil
	}

	pdf, err := renderer.Render(ctx, doc)
	if err != nil {
		uc.console.LogError("Report rendering failed: %v", err)
		uc.logger.Error("render failed", zap.Error(err))
		return nil
	}

	pdfPath, err := uc.exportRepo.WritePDF(pdf, cfg.ReportPrefix, cfg.OutputFolder, period)
	if err != nil {
		uc.console.LogError("Could not write report: %v", err)
		uc.logger.Error("write failed", zap.Error(err))
		return nil
	}
	uc.console.LogSuccess("PDF file created: %s", pdfPath)
	uc.logger.Info("pdf written", zap.String("path", pdfPath))

	uc.exportExtras(cfg, doc, period)

	uc.notify(ctx, cfg, loc, period, pdfPath)

	uc.logger.Info("report finished")
	return nil
}

// applyArgs lets command-line flags win over config values.
func applyArgs(cfg *types.Config, args *types.CLIArgs) {
	if args.Dir != "" {
		cfg.OutputFolder = args.Dir
	}
	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if len(cfg.ReportType) == 0 {
		cfg.ReportType = []string{"pdf"}
	}
	if args.Engine != "" {
		cfg.Engine = args.Engine
	}
}

// resolvePeriod defaults to the previous calendar month when either flag
// is omitted.
func resolvePeriod(args *types.CLIArgs, now time.Time) (entity.Period, error) {
	if args.Year == nil || args.Month == nil {
		return entity.PreviousMonth(now), nil
	}
	if *args.Month < 1 || *args.Month > 12 {
		return entity.Period{}, types.ErrInvalidMonth
	}
	return entity.Period{Year: *args.Year, Month: time.Month(*args.Month)}, nil
}

func (uc *ReportUseCase) buildRenderContext(
	cfg *types.Config,
	loc *localize.Locale,
	period entity.Period,
	table entity.SessionTable,
	rows []entity.FormattedRow,
	totals entity.ReportTotals,
) *entity.RenderContext {
	return &entity.RenderContext{
		Language: loc.Language,
		Sender: entity.SenderInfo{
			Name:   cfg.SenderName,
			Street: cfg.SenderStreet,
			City:   cfg.SenderCity,
		},
		CreationDate: loc.FormatDate(uc.now()),
		PeriodLabel:  loc.MonthName(period.Month) + " " + strconv.Itoa(period.Year),
		Columns:      table.Columns,
		Charges:      rows,
		TotalEnergy:  totals.EnergyRendered,
		TotalPrice:   totals.PriceRendered,
	}
}

// exportExtras writes the optional CSV/JSON companions. Failures are
// logged and do not fail the run; the PDF is the primary artifact.
func (uc *ReportUseCase) exportExtras(cfg *types.Config, doc *entity.RenderContext, period entity.Period) {
	for _, reportType := range cfg.ReportType {
		switch reportType {
		case "pdf":
			// already written
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(doc, cfg.ReportPrefix, cfg.OutputFolder, period)
			if err != nil {
				uc.console.LogWarning("CSV export failed: %v", err)
				continue
			}
			uc.console.LogSuccess("CSV file created: %s", path)
		case "json":
			path, err := uc.exportRepo.ExportToJSON(doc, cfg.ReportPrefix, cfg.OutputFolder, period)
			if err != nil {
				uc.console.LogWarning("JSON export failed: %v", err)
				continue
			}
			uc.console.LogSuccess("JSON file created: %s", path)
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
}

// notify mails the PDF when the SMTP configuration is complete. Any
// failure here is swallowed: the run already produced its artifact.
func (uc *ReportUseCase) notify(ctx context.Context, cfg *types.Config, loc *localize.Locale, period entity.Period, pdfPath string) {
	monthLabel := loc.MonthName(period.Month) + " " + strconv.Itoa(period.Year)

	var subject, body string
	if loc.Language == "de" {
		subject = fmt.Sprintf("Ladekosten-Übersicht für %s", monthLabel)
		body = fmt.Sprintf("Anbei die automatische Ladekosten-Übersicht für %s.", monthLabel)
	} else {
		subject = fmt.Sprintf("Charging Cost Summary for %s", monthLabel)
		body = fmt.Sprintf("Attached is the automatic charging cost summary for %s.", monthLabel)
	}

	notifier := uc.collaborators.NewNotifier(cfg, uc.logger)
	if err := notifier.Send(ctx, subject, body, pdfPath); err != nil {
		uc.console.LogWarning("Email could not be sent: %v", err)
		uc.logger.Warn("email failed", zap.Error(err))
	}
}
