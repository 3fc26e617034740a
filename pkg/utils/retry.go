package utils

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy define quantas vezes e com qual espera inicial um provedor é retentado
type RetryPolicy struct {
	BaseDelay  time.Duration
	MaxRetries int
}

func NewRetryPolicy(baseDelay time.Duration, maxRetries int) RetryPolicy {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return RetryPolicy{BaseDelay: baseDelay, MaxRetries: maxRetries}
}

// Do executa fn até ter sucesso, receber um erro permanente, esgotar as tentativas ou o
// contexto terminar. notify é chamado antes de cada nova tentativa e pode ser nil.
func (p RetryPolicy) Do(ctx context.Context, fn func(attempt int) error, notify func(attempt int, err error, wait time.Duration)) error {
	attempt := 0
	operation := func() error {
		err := fn(attempt)
		attempt++
		return err
	}

	var onRetry backoff.Notify
	if notify != nil {
		onRetry = func(err error, wait time.Duration) {
			notify(attempt, err, wait)
		}
	}

	return backoff.RetryNotify(operation, p.backOff(ctx), onRetry)
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if p.BaseDelay > 0 {
		exp.InitialInterval = p.BaseDelay
	}
	// o limite é dado pelo número de tentativas e pelo contexto
	exp.MaxElapsedTime = 0
	exp.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(p.MaxRetries)), ctx)
}

type retryable interface {
	Retryable() bool
}

// Classify marca como permanente o erro que não é transitório ou cujo contexto já terminou
func Classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return backoff.Permanent(err)
	}

	var r retryable
	if errors.As(err, &r) && !r.Retryable() {
		return backoff.Permanent(err)
	}

	return err
}
