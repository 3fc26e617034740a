package aggregating

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/metrics"
)

type adResult struct {
	provider domain.ProviderID
	state    domain.ProviderState
	metrics  *domain.AdSpendMetrics
}

// Service consulta os provedores em paralelo.
// Falha do provedor de pedidos aborta a agregação; falha de anúncios vira gasto zero e estado degradado.
type Service struct {
	orders         OrdersProvider
	adProviders    []AdSpendProvider
	ordersTimeout  time.Duration
	adSpendTimeout time.Duration
}

func NewService(cfg *config.Config, orders OrdersProvider, adProviders ...AdSpendProvider) *Service {
	return &Service{
		orders:         orders,
		adProviders:    adProviders,
		ordersTimeout:  cfg.Aggregation.OrdersTimeout,
		adSpendTimeout: cfg.Aggregation.AdSpendTimeout,
	}
}

func (s *Service) Aggregate(ctx context.Context, date domain.DateKey) (*domain.AggregatedMetrics, error) {
	logger := logrus.WithField("date", date.String())

	if err := s.orders.ConfigError(); err != nil {
		metrics.AggregationsTotal.WithLabelValues(metrics.OutcomeUnconfigured).Inc()
		logger.WithError(err).Error("aggregation: orders provider not configured")
		return nil, err
	}

	adIDs := make([]domain.ProviderID, 0, len(s.adProviders))
	for _, p := range s.adProviders {
		adIDs = append(adIDs, p.ID())
	}
	result := domain.NewAggregatedMetrics(date, adIDs...)

	started := time.Now()
	adResults := make([]adResult, len(s.adProviders))

	// falha de pedidos cancela os ramos de anúncios ainda em andamento
	aggCtx, cancelAgg := context.WithCancel(ctx)
	defer cancelAgg()

	var (
		wg           sync.WaitGroup
		orderMetrics *domain.OrderMetrics
		ordersErr    error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()

		branchCtx, cancel := withTimeout(aggCtx, s.ordersTimeout)
		defer cancel()

		orderMetrics, ordersErr = s.orders.FetchOrders(branchCtx, date)
		if ordersErr != nil {
			cancelAgg()
		}
	}()

	for i, provider := range s.adProviders {
		adResults[i].provider = provider.ID()

		if err := provider.ConfigError(); err != nil {
			adResults[i].state = domain.ProviderStateUnconfigured
			continue
		}

		wg.Add(1)
		go func(slot *adResult, provider AdSpendProvider) {
			defer wg.Done()

			branchCtx, cancel := withTimeout(aggCtx, s.adSpendTimeout)
			defer cancel()

			spend, err := provider.FetchAdSpend(branchCtx, date)
			if err != nil {
				logger.WithFields(logrus.Fields{
					"provider": provider.ID(),
					"error":    err.Error(),
				}).Warn("aggregation: ad spend unavailable, reporting zero")
				slot.state = domain.ProviderStateDegraded
				return
			}

			slot.state = domain.ProviderStateOK
			slot.metrics = spend
		}(&adResults[i], provider)
	}

	wg.Wait()

	if ordersErr != nil {
		metrics.AggregationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		metrics.ProviderBranchOutcomes.WithLabelValues(string(s.orders.ID()), metrics.OutcomeError).Inc()
		recordAdOutcomes(adResults)
		return nil, &domain.AggregationError{Date: date, Err: fmt.Errorf("orders branch failed: %w", ordersErr)}
	}
	if orderMetrics == nil {
		metrics.AggregationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, &domain.AggregationError{Date: date, Err: errors.New("orders provider returned no metrics")}
	}

	result.Revenue = orderMetrics.RevenueTotal
	result.Orders = orderMetrics.OrderCount
	result.Providers[s.orders.ID()] = domain.ProviderStateOK
	metrics.ProviderBranchOutcomes.WithLabelValues(string(s.orders.ID()), metrics.OutcomeSuccess).Inc()

	for _, r := range adResults {
		result.Providers[r.provider] = r.state
		if r.metrics != nil {
			result.AdSpendByProvider[r.provider] = r.metrics.Spend
		}
	}
	recordAdOutcomes(adResults)

	outcome := metrics.OutcomeSuccess
	if len(result.DegradedProviders()) > 0 {
		outcome = metrics.OutcomeDegraded
	}
	metrics.AggregationsTotal.WithLabelValues(outcome).Inc()

	logger.WithFields(logrus.Fields{
		"orders":   result.Orders,
		"revenue":  result.Revenue.String(),
		"degraded": result.DegradedProviders(),
		"elapsed":  time.Since(started).String(),
	}).Info("aggregation: daily metrics aggregated")

	return result, nil
}

func (s *Service) ProviderStatuses() []domain.ProviderStatus {
	statuses := make([]domain.ProviderStatus, 0, len(s.adProviders)+1)
	statuses = append(statuses, providerStatus(s.orders.ID(), s.orders.ConfigError(), true))

	for _, p := range s.adProviders {
		statuses = append(statuses, providerStatus(p.ID(), p.ConfigError(), false))
	}

	return statuses
}

func providerStatus(id domain.ProviderID, configErr error, required bool) domain.ProviderStatus {
	status := domain.ProviderStatus{
		Provider:   id,
		Configured: configErr == nil,
		Required:   required,
	}

	var cfgErr *domain.ConfigurationError
	if errors.As(configErr, &cfgErr) {
		status.Missing = cfgErr.Missing
	}

	return status
}

// withTimeout aplica o limite do ramo; zero mantém apenas o contexto da requisição
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func recordAdOutcomes(results []adResult) {
	for _, r := range results {
		metrics.ProviderBranchOutcomes.WithLabelValues(string(r.provider), outcomeFor(r.state)).Inc()
	}
}

func outcomeFor(state domain.ProviderState) string {
	switch state {
	case domain.ProviderStateOK:
		return metrics.OutcomeSuccess
	case domain.ProviderStateUnconfigured:
		return metrics.OutcomeUnconfigured
	default:
		return metrics.OutcomeDegraded
	}
}
