package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/profiting"
)

// SessionCleanupService remove periodicamente as sessões de custo expiradas
type SessionCleanupService struct {
	scheduler          *gocron.Scheduler
	cronSchedule       string
	enabled            bool
	sessions           profiting.SessionService
	mutex              sync.Mutex
	running            bool
	lastRunCompletedAt time.Time
	lastRemoved        int
}

func NewSessionCleanupService(sessions profiting.SessionService, appConfig *config.Config) *SessionCleanupService {
	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	return &SessionCleanupService{
		scheduler:    gocron.NewScheduler(location),
		cronSchedule: appConfig.SessionCleanup.CronSchedule,
		enabled:      appConfig.SessionCleanup.Enabled,
		sessions:     sessions,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(s.cleanup)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.cronSchedule).Info("Agendador de limpeza de sessões iniciado")

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SessionCleanupService) cleanup() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return
	}
	s.running = true
	s.mutex.Unlock()

	removed := s.sessions.PurgeExpired()

	s.mutex.Lock()
	s.running = false
	s.lastRemoved = removed
	s.lastRunCompletedAt = time.Now()
	s.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed": removed,
		"active":  s.sessions.Len(),
	}).Info("Limpeza de sessões expiradas concluída")
}

// TriggerManualSync executa a limpeza imediatamente
func (s *SessionCleanupService) TriggerManualSync() {
	go s.cleanup()
}

func (s *SessionCleanupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":               s.enabled,
		"cron":                  s.cronSchedule,
		"running":               s.running,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_removed":          s.lastRemoved,
	}
}
