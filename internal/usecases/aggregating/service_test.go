package aggregating

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

var testDate = domain.DateKey{Year: 2024, Month: time.January, Day: 15}

func testConfig() *config.Config {
	return &config.Config{
		Aggregation: config.Aggregation{
			OrdersTimeout:  2 * time.Second,
			AdSpendTimeout: 50 * time.Millisecond,
		},
	}
}

func newOrdersProvider(ctrl *gomock.Controller, configErr error) *mocks.MockOrdersProvider {
	m := mocks.NewMockOrdersProvider(ctrl)
	m.EXPECT().ID().Return(domain.ProviderShopify).AnyTimes()
	m.EXPECT().ConfigError().Return(configErr).AnyTimes()
	return m
}

func newAdProvider(ctrl *gomock.Controller, id domain.ProviderID, configErr error) *mocks.MockAdSpendProvider {
	m := mocks.NewMockAdSpendProvider(ctrl)
	m.EXPECT().ID().Return(id).AnyTimes()
	m.EXPECT().ConfigError().Return(configErr).AnyTimes()
	return m
}

func orders(revenue string, count int) *domain.OrderMetrics {
	return &domain.OrderMetrics{RevenueTotal: decimal.RequireFromString(revenue), OrderCount: count}
}

func spend(provider domain.ProviderID, value string) *domain.AdSpendMetrics {
	return &domain.AdSpendMetrics{Provider: provider, Spend: decimal.RequireFromString(value)}
}

func TestService_Aggregate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(ctrl *gomock.Controller) (OrdersProvider, []AdSpendProvider)
		validate func(t *testing.T, result *domain.AggregatedMetrics, err error)
	}{
		{
			name: "Todos os provedores respondem",
			setup: func(ctrl *gomock.Controller) (OrdersProvider, []AdSpendProvider) {
				shop := newOrdersProvider(ctrl, nil)
				shop.EXPECT().FetchOrders(gomock.Any(), testDate).Return(orders("5000.00", 100), nil).Times(1)

				meta := newAdProvider(ctrl, domain.ProviderMeta, nil)
				meta.EXPECT().FetchAdSpend(gomock.Any(), testDate).Return(spend(domain.ProviderMeta, "300"), nil).Times(1)

				tiktok := newAdProvider(ctrl, domain.ProviderTikTok, nil)
				tiktok.EXPECT().FetchAdSpend(gomock.Any(), testDate).Return(spend(domain.ProviderTikTok, "150"), nil).Times(1)

				return shop, []AdSpendProvider{meta, tiktok}
			},
			validate: func(t *testing.T, result *domain.AggregatedMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, testDate, result.Date)
				assert.Equal(t, 100, result.Orders)
				assert.True(t, result.Revenue.Equal(decimal.NewFromInt(5000)))
				assert.True(t, result.AdSpend(domain.ProviderMeta).Equal(decimal.NewFromInt(300)))
				assert.True(t, result.AdSpend(domain.ProviderTikTok).Equal(decimal.NewFromInt(150)))
				assert.Equal(t, domain.ProviderStateOK, result.Providers[domain.ProviderShopify])
				assert.Equal(t, domain.ProviderStateOK, result.Providers[domain.ProviderMeta])
				assert.Equal(t, domain.ProviderStateOK, result.Providers[domain.ProviderTikTok])
				assert.Empty(t, result.DegradedProviders())
			},
		},
		{
			name: "Falha de anúncios vira gasto zero degradado",
			setup: func(ctrl *gomock.Controller) (OrdersProvider, []AdSpendProvider) {
				shop := newOrdersProvider(ctrl, nil)
				shop.EXPECT().FetchOrders(gomock.Any(), testDate).Return(orders("100", 2), nil)

				meta := newAdProvider(ctrl, domain.ProviderMeta, nil)
				meta.EXPECT().FetchAdSpend(gomock.Any(), testDate).
					Return(nil, &domain.ProviderError{Provider: domain.ProviderMeta, StatusCode: 500, Err: errors.New("boom")})

				tiktok := newAdProvider(ctrl, domain.ProviderTikTok, nil)
				tiktok.EXPECT().FetchAdSpend(gomock.Any(), testDate).Return(spend(domain.ProviderTikTok, "10"), nil)

				return shop, []AdSpendProvider{meta, tiktok}
			},
			validate: func(t *testing.T, result *domain.AggregatedMetrics, err error) {
				require.NoError(t, err)
				assert.True(t, result.AdSpend(domain.ProviderMeta).IsZero())
				assert.True(t, result.AdSpend(domain.ProviderTikTok).Equal(decimal.NewFromInt(10)))
				assert.Equal(t, domain.ProviderStateDegraded, result.Providers[domain.ProviderMeta])
				assert.Equal(t, []domain.ProviderID{domain.ProviderMeta}, result.DegradedProviders())
			},
		},
		{
			name: "Timeout de anúncios não bloqueia a agregação",
			setup: func(ctrl *gomock.Controller) (OrdersProvider, []AdSpendProvider) {
				shop := newOrdersProvider(ctrl, nil)
				shop.EXPECT().FetchOrders(gomock.Any(), testDate).Return(orders("100", 2), nil)

				tiktok := newAdProvider(ctrl, domain.ProviderTikTok, nil)
				tiktok.EXPECT().FetchAdSpend(gomock.Any(), testDate).
					DoAndReturn(func(ctx context.Context, _ domain.DateKey) (*domain.AdSpendMetrics, error) {
						<-ctx.Done()
						return nil, ctx.Err()
					})

				return shop, []AdSpendProvider{tiktok}
			},
			validate: func(t *testing.T, result *domain.AggregatedMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ProviderStateDegraded, result.Providers[domain.ProviderTikTok])
				assert.True(t, result.AdSpend(domain.ProviderTikTok).IsZero())
			},
		},
		{
			name: "Provedor de anúncios sem credenciais não é chamado",
			setup: func(ctrl *gomock.Controller) (OrdersProvider, []AdSpendProvider) {
				shop := newOrdersProvider(ctrl, nil)
				shop.EXPECT().FetchOrders(gomock.Any(), testDate).Return(orders("100", 2), nil)

				meta := newAdProvider(ctrl, domain.ProviderMeta, domain.NewConfigurationError(domain.ProviderMeta, "META_ACCESS_TOKEN"))
				meta.EXPECT().FetchAdSpend(gomock.Any(), gomock.Any()).Times(0)

				return shop, []AdSpendProvider{meta}
			},
			validate: func(t *testing.T, result *domain.AggregatedMetrics, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ProviderStateUnconfigured, result.Providers[domain.ProviderMeta])
				assert.True(t, result.AdSpend(domain.ProviderMeta).IsZero())
				assert.Empty(t, result.DegradedProviders())
			},
		},
		{
			name: "Falha de pedidos aborta a agregação",
			setup: func(ctrl *gomock.Controller) (OrdersProvider, []AdSpendProvider) {
				shop := newOrdersProvider(ctrl, nil)
				shop.EXPECT().FetchOrders(gomock.Any(), testDate).
					Return(nil, &domain.ProviderError{Provider: domain.ProviderShopify, StatusCode: 503, Err: errors.New("indisponível")})

				meta := newAdProvider(ctrl, domain.ProviderMeta, nil)
				meta.EXPECT().FetchAdSpend(gomock.Any(), testDate).Return(spend(domain.ProviderMeta, "1"), nil)

				return shop, []AdSpendProvider{meta}
			},
			validate: func(t *testing.T, result *domain.AggregatedMetrics, err error) {
				assert.Nil(t, result)

				var aggErr *domain.AggregationError
				require.True(t, errors.As(err, &aggErr))
				assert.Equal(t, testDate, aggErr.Date)

				var providerErr *domain.ProviderError
				require.True(t, errors.As(err, &providerErr))
				assert.Equal(t, 503, providerErr.StatusCode)
			},
		},
		{
			name: "Pedidos sem credenciais retorna erro de configuração sem chamadas",
			setup: func(ctrl *gomock.Controller) (OrdersProvider, []AdSpendProvider) {
				shop := newOrdersProvider(ctrl, domain.NewConfigurationError(domain.ProviderShopify, "SHOPIFY_ACCESS_TOKEN"))
				shop.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).Times(0)

				meta := newAdProvider(ctrl, domain.ProviderMeta, nil)
				meta.EXPECT().FetchAdSpend(gomock.Any(), gomock.Any()).Times(0)

				return shop, []AdSpendProvider{meta}
			},
			validate: func(t *testing.T, result *domain.AggregatedMetrics, err error) {
				assert.Nil(t, result)

				var configErr *domain.ConfigurationError
				require.True(t, errors.As(err, &configErr))
				assert.Equal(t, domain.ProviderShopify, configErr.Provider)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ordersProvider, adProviders := tt.setup(ctrl)
			service := NewService(testConfig(), ordersProvider, adProviders...)

			result, err := service.Aggregate(context.Background(), testDate)

			tt.validate(t, result, err)
		})
	}
}

func TestService_Aggregate_BranchesRunConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var barrier sync.WaitGroup
	barrier.Add(3)
	allStarted := make(chan struct{})
	go func() {
		barrier.Wait()
		close(allStarted)
	}()

	wait := func(ctx context.Context) error {
		barrier.Done()
		select {
		case <-allStarted:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	shop := newOrdersProvider(ctrl, nil)
	shop.EXPECT().FetchOrders(gomock.Any(), testDate).
		DoAndReturn(func(ctx context.Context, _ domain.DateKey) (*domain.OrderMetrics, error) {
			if err := wait(ctx); err != nil {
				return nil, err
			}
			return orders("10", 1), nil
		})

	adProviders := make([]AdSpendProvider, 0, 2)
	for _, id := range domain.AdProviders {
		id := id
		p := newAdProvider(ctrl, id, nil)
		p.EXPECT().FetchAdSpend(gomock.Any(), testDate).
			DoAndReturn(func(ctx context.Context, _ domain.DateKey) (*domain.AdSpendMetrics, error) {
				if err := wait(ctx); err != nil {
					return nil, err
				}
				return spend(id, "1"), nil
			})
		adProviders = append(adProviders, p)
	}

	cfg := testConfig()
	cfg.Aggregation.AdSpendTimeout = 2 * time.Second

	result, err := NewService(cfg, shop, adProviders...).Aggregate(context.Background(), testDate)
	require.NoError(t, err)

	// se os ramos fossem sequenciais, o primeiro esperaria pelos outros até o timeout
	assert.Empty(t, result.DegradedProviders())
	assert.Equal(t, 1, result.Orders)
}

func TestService_Aggregate_OrdersFailureCancelsAdBranches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shop := newOrdersProvider(ctrl, nil)
	shop.EXPECT().FetchOrders(gomock.Any(), testDate).
		Return(nil, &domain.ProviderError{Provider: domain.ProviderShopify, StatusCode: 401, Err: errors.New("token inválido")})

	adErr := make(chan error, 1)
	meta := newAdProvider(ctrl, domain.ProviderMeta, nil)
	meta.EXPECT().FetchAdSpend(gomock.Any(), testDate).
		DoAndReturn(func(ctx context.Context, _ domain.DateKey) (*domain.AdSpendMetrics, error) {
			<-ctx.Done()
			adErr <- ctx.Err()
			return nil, ctx.Err()
		})

	cfg := testConfig()
	cfg.Aggregation.AdSpendTimeout = 2 * time.Second

	started := time.Now()
	result, err := NewService(cfg, shop, meta).Aggregate(context.Background(), testDate)
	elapsed := time.Since(started)

	assert.Nil(t, result)

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, 401, providerErr.StatusCode)

	// o ramo de anúncios é cancelado, não espera o próprio timeout
	assert.Less(t, elapsed, 500*time.Millisecond)
	assert.ErrorIs(t, <-adErr, context.Canceled)
}

func TestService_ProviderStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shop := newOrdersProvider(ctrl, nil)
	meta := newAdProvider(ctrl, domain.ProviderMeta, domain.NewConfigurationError(domain.ProviderMeta, "META_ACCESS_TOKEN", "META_AD_ACCOUNT_ID"))
	tiktok := newAdProvider(ctrl, domain.ProviderTikTok, nil)

	statuses := NewService(testConfig(), shop, meta, tiktok).ProviderStatuses()

	assert.Equal(t, []domain.ProviderStatus{
		{Provider: domain.ProviderShopify, Configured: true, Required: true},
		{Provider: domain.ProviderMeta, Configured: false, Missing: []string{"META_ACCESS_TOKEN", "META_AD_ACCOUNT_ID"}},
		{Provider: domain.ProviderTikTok, Configured: true},
	}, statuses)
}
