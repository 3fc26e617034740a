package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/profiting"
)

const defaultReportTimeout = 2 * time.Minute

// DailyReportConfig representa a configuração do relatório diário de lucro
type DailyReportConfig struct {
	CronSchedule string
	Timeout      time.Duration
	Enabled      bool
}

// DailyReportService agrega o dia anterior e registra o resultado no log
type DailyReportService struct {
	scheduler           *gocron.Scheduler
	config              DailyReportConfig
	location            *time.Location
	aggregator          aggregating.Aggregator
	costs               domain.CostAssumptions
	now                 func() time.Time
	running             bool
	mutex               sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastReportDate      string
	lastReport          *domain.ProfitBreakdown
	lastDegradedSources []domain.ProviderID
}

// NewDailyReportService cria o serviço usando as premissas de custo padrão
func NewDailyReportService(aggregator aggregating.Aggregator, appConfig *config.Config) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: appConfig.DailyReport.CronSchedule,
		Timeout:      appConfig.Aggregation.OrdersTimeout + appConfig.Aggregation.AdSpendTimeout,
		Enabled:      appConfig.DailyReport.Enabled,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
		"timezone":      location.String(),
	}).Info("Configuração do relatório diário de lucro carregada")

	return &DailyReportService{
		scheduler:  gocron.NewScheduler(location),
		config:     reportConfig,
		location:   location,
		aggregator: aggregator,
		costs: domain.CostAssumptions{
			UnitCOGS:          appConfig.CostDefaults.UnitCOGS,
			UnitShipping:      appConfig.CostDefaults.UnitShipping,
			MonthlyFixedCosts: appConfig.CostDefaults.MonthlyFixedCosts,
		},
		now: time.Now,
	}
}

// Start inicia o agendador
func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório diário de lucro desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório diário de lucro")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailyReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário de lucro: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório diário de lucro")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailyReport calcula o lucro de ontem com as premissas padrão
func (s *DailyReportService) runDailyReport(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Relatório diário de lucro já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunStartedAt = s.now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	date := domain.DateKeyFromTime(s.now().In(s.location)).AddDays(-1)

	timeout := s.config.Timeout
	if timeout <= 0 {
		timeout = defaultReportTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	metrics, err := s.aggregator.Aggregate(runCtx, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date":  date.String(),
			"error": err.Error(),
		}).Error("Erro ao agregar dados para o relatório diário de lucro")
		return
	}

	breakdown := profiting.ComputeBreakdown(*metrics, s.costs).Rounded(profiting.PresentationPlaces)

	logrus.WithFields(logrus.Fields{
		"date":              date.String(),
		"revenue":           breakdown.Revenue.StringFixed(2),
		"orders":            breakdown.Orders,
		"total_cogs":        breakdown.TotalCOGS.StringFixed(2),
		"total_shipping":    breakdown.TotalShipping.StringFixed(2),
		"total_ad_spend":    breakdown.TotalAdSpend.StringFixed(2),
		"daily_fixed_costs": breakdown.DailyFixedCosts.StringFixed(2),
		"net_profit":        breakdown.NetProfit.StringFixed(2),
		"degraded":          metrics.DegradedProviders(),
	}).Info("Relatório diário de lucro gerado")

	s.mutex.Lock()
	s.lastReportDate = date.String()
	s.lastReport = &breakdown
	s.lastDegradedSources = metrics.DegradedProviders()
	s.lastRunCompletedAt = s.now()
	s.mutex.Unlock()
}

// TriggerManualSync executa o relatório fora do agendamento
func (s *DailyReportService) TriggerManualSync() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Relatório diário de lucro já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando relatório diário de lucro manual")
	go s.runDailyReport(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DailyReportService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_report_date":      s.lastReportDate,
		"last_report":           s.lastReport,
		"last_degraded":         s.lastDegradedSources,
	}
}
