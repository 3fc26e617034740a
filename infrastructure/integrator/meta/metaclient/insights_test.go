package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		Meta: config.Meta{
			URL:         url + "/v18.0",
			AdAccountID: "123456",
			AccessToken: "EAAB-token",
		},
		ProviderHTTP: config.ProviderHTTP{
			Timeout:        5 * time.Second,
			MaxRetries:     2,
			RetryBaseDelay: time.Millisecond,
		},
	}
}

func day() InsightsParams {
	date := domain.DateKey{Year: 2024, Month: time.January, Day: 15}
	return InsightsParams{Since: date, Until: date}
}

func TestAccountPath(t *testing.T) {
	assert.Equal(t, "act_123", AccountPath("123"))
	assert.Equal(t, "act_123", AccountPath("act_123"))
	assert.Equal(t, "act_123", AccountPath(" 123 "))
}

func TestBuildInsightsRequest(t *testing.T) {
	req, err := BuildInsightsRequest(context.Background(), testConfig("https://graph.facebook.com").Meta, day())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "graph.facebook.com", req.URL.Host)
	assert.Equal(t, "/v18.0/act_123456/insights", req.URL.Path)

	query := req.URL.Query()
	assert.Equal(t, "spend", query.Get("fields"))
	assert.Equal(t, "account", query.Get("level"))
	assert.Equal(t, "EAAB-token", query.Get("access_token"))
	assert.JSONEq(t, `{"since":"2024-01-15","until":"2024-01-15"}`, query.Get("time_range"))
}

func TestBuildInsightsRequest_AccountAlreadyPrefixed(t *testing.T) {
	cfg := testConfig("https://graph.facebook.com").Meta
	cfg.AdAccountID = "act_987"

	req, err := BuildInsightsRequest(context.Background(), cfg, day())
	require.NoError(t, err)

	assert.Equal(t, "/v18.0/act_987/insights", req.URL.Path)
}

func TestGetAdAccountInsights(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedCalls int32
		expectedRows  int
		expectedSpend decimal.Decimal
		expectedCode  int
	}{
		{
			name:          "Gasto retornado como string",
			status:        http.StatusOK,
			body:          `{"data":[{"account_id":"123456","spend":"150.75","date_start":"2024-01-15","date_stop":"2024-01-15"}]}`,
			expectedCalls: 1,
			expectedRows:  1,
			expectedSpend: decimal.RequireFromString("150.75"),
		},
		{
			name:          "Sem linhas no período",
			status:        http.StatusOK,
			body:          `{"data":[]}`,
			expectedCalls: 1,
			expectedRows:  0,
			expectedSpend: decimal.Zero,
		},
		{
			name:          "Token inválido não é retentado",
			status:        http.StatusBadRequest,
			body:          `{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"fbtrace_id":"AbC"}}`,
			expectedCalls: 1,
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:          "Erro do servidor é retentado até o limite",
			status:        http.StatusInternalServerError,
			body:          `{"error":{"message":"An unknown error occurred","code":1}}`,
			expectedCalls: 3,
			expectedCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				assert.Equal(t, "/v18.0/act_123456/insights", r.URL.Path)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			rows, err := NewClient(testConfig(srv.URL)).GetAdAccountInsights(context.Background(), day())

			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(&calls))

			if tt.expectedCode != 0 {
				var providerErr *domain.ProviderError
				require.True(t, errors.As(err, &providerErr))
				assert.Equal(t, domain.ProviderMeta, providerErr.Provider)
				assert.Equal(t, tt.expectedCode, providerErr.StatusCode)
				return
			}

			require.NoError(t, err)
			require.Len(t, rows, tt.expectedRows)
			total := decimal.Zero
			for _, row := range rows {
				total = total.Add(row.Spend)
			}
			assert.True(t, tt.expectedSpend.Equal(total))
		})
	}
}

func TestGetAdAccountInsights_TransportErrorHidesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	cfg := testConfig(url)
	cfg.ProviderHTTP.MaxRetries = 0

	_, err := NewClient(cfg).GetAdAccountInsights(context.Background(), day())
	require.Error(t, err)

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Zero(t, providerErr.StatusCode)
	assert.NotContains(t, err.Error(), "EAAB-token")
}

func TestGetAdAccountInsights_TokenExpiredIsLogged(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectLog   bool
		expectTrace string
	}{
		{
			name:        "Código 190",
			body:        `{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"AbC"}}`,
			expectLog:   true,
			expectTrace: "AbC",
		},
		{
			name:        "OAuthException com subcódigo de sessão",
			body:        `{"error":{"message":"Session has been invalidated","type":"OAuthException","code":102,"error_subcode":460,"fbtrace_id":"XyZ"}}`,
			expectLog:   true,
			expectTrace: "XyZ",
		},
		{
			name:        "Parâmetro inválido não indica token expirado",
			body:        `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"fbtrace_id":"Def"}}`,
			expectLog:   false,
			expectTrace: "Def",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewGlobal()
			defer hook.Reset()

			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(testConfig(srv.URL)).GetAdAccountInsights(context.Background(), day())

			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

			var providerErr *domain.ProviderError
			require.True(t, errors.As(err, &providerErr))
			assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
			assert.Contains(t, err.Error(), "fbtrace_id "+tt.expectTrace)

			var expired []*logrus.Entry
			for _, entry := range hook.AllEntries() {
				if entry.Message == "meta: access token expired, META_ACCESS_TOKEN must be renewed" {
					expired = append(expired, entry)
				}
			}

			if !tt.expectLog {
				assert.Empty(t, expired)
				return
			}

			require.Len(t, expired, 1)
			assert.Equal(t, logrus.ErrorLevel, expired[0].Level)
			assert.Equal(t, tt.expectTrace, expired[0].Data["fbtrace_id"])
			assert.Equal(t, domain.ProviderMeta, expired[0].Data["provider"])
		})
	}
}
