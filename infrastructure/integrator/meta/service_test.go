package meta

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/vfg2006/profit-tracker-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMetaIntegrator_FetchAdSpend(t *testing.T) {
	date := domain.DateKey{Year: 2024, Month: time.January, Day: 15}
	configured := &config.Config{Meta: config.Meta{AdAccountID: "123", AccessToken: "token"}}

	tests := []struct {
		name     string
		cfg      *config.Config
		setup    func(mockClient *metamocks.MockClient)
		validate func(t *testing.T, result *domain.AdSpendMetrics, err error)
	}{
		{
			name: "Soma o gasto das linhas retornadas",
			cfg:  configured,
			setup: func(mockClient *metamocks.MockClient) {
				mockClient.EXPECT().
					GetAdAccountInsights(gomock.Any(), metaclient.InsightsParams{Since: date, Until: date}).
					Return([]metadomain.AdAccountInsight{
						{AccountID: "123", Spend: decimal.RequireFromString("100.25")},
						{AccountID: "123", Spend: decimal.RequireFromString("50.50")},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.AdSpendMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ProviderMeta, result.Provider)
				assert.True(t, result.Spend.Equal(decimal.RequireFromString("150.75")))
			},
		},
		{
			name: "Sem linhas retorna gasto zero",
			cfg:  configured,
			setup: func(mockClient *metamocks.MockClient) {
				mockClient.EXPECT().GetAdAccountInsights(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.AdSpendMetrics, err error) {
				require.NoError(t, err)
				assert.True(t, result.Spend.IsZero())
			},
		},
		{
			name: "Erro do cliente é propagado",
			cfg:  configured,
			setup: func(mockClient *metamocks.MockClient) {
				mockClient.EXPECT().GetAdAccountInsights(gomock.Any(), gomock.Any()).
					Return(nil, &domain.ProviderError{Provider: domain.ProviderMeta, StatusCode: 500, Err: errors.New("boom")})
			},
			validate: func(t *testing.T, result *domain.AdSpendMetrics, err error) {
				var providerErr *domain.ProviderError
				require.True(t, errors.As(err, &providerErr))
				assert.Nil(t, result)
			},
		},
		{
			name: "Sem credenciais não chama a API",
			cfg:  &config.Config{},
			setup: func(mockClient *metamocks.MockClient) {
				mockClient.EXPECT().GetAdAccountInsights(gomock.Any(), gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, result *domain.AdSpendMetrics, err error) {
				var configErr *domain.ConfigurationError
				require.True(t, errors.As(err, &configErr))
				assert.Equal(t, []string{"META_ACCESS_TOKEN", "META_AD_ACCOUNT_ID"}, configErr.Missing)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := metamocks.NewMockClient(ctrl)
			tt.setup(mockClient)

			service := New(tt.cfg, mockClient)
			result, err := service.FetchAdSpend(context.Background(), date)

			tt.validate(t, result, err)
		})
	}
}
