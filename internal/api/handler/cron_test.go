package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCronJob struct {
	name      string
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"name": f.name, "is_running": false}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		cronType       string
		expectedCode   int
		dailyRuns      int
		cleanupRuns    int
		withoutCleanup bool
	}{
		{name: "Relatório diário", cronType: "daily-report", expectedCode: http.StatusAccepted, dailyRuns: 1},
		{name: "Limpeza de sessões", cronType: "session-cleanup", expectedCode: http.StatusAccepted, cleanupRuns: 1},
		{name: "Todos", cronType: "all", expectedCode: http.StatusAccepted, dailyRuns: 1, cleanupRuns: 1},
		{name: "Tipo inválido", cronType: "meta", expectedCode: http.StatusBadRequest},
		{name: "Agendador indisponível", cronType: "session-cleanup", expectedCode: http.StatusInternalServerError, withoutCleanup: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			daily := &fakeCronJob{name: "daily"}
			cleanup := &fakeCronJob{name: "cleanup"}

			services := CronJobServices{DailyReport: daily, SessionCleanup: cleanup}
			if tt.withoutCleanup {
				services.SessionCleanup = nil
			}

			rec := serve(newTestRouter(nil, nil, services), http.MethodPost, "/v1/cron/run/"+tt.cronType, "")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.dailyRuns, daily.triggered)
			assert.Equal(t, tt.cleanupRuns, cleanup.triggered)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{
		DailyReport:    &fakeCronJob{name: "daily"},
		SessionCleanup: &fakeCronJob{name: "cleanup"},
	}

	rec := serve(newTestRouter(nil, nil, services), http.MethodGet, "/v1/cron/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body, "daily-report")
	assert.Contains(t, body, "session-cleanup")
}
