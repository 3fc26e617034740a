package profiting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de sessões
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidCosts    = errors.New("invalid cost assumptions")
	ErrGenerateID      = errors.New("error generating session ID")
)

// SessionError é um erro com contexto adicional para sessões
type SessionError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SessionID string
	Details   string
}

func (e *SessionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

func NewSessionError(err error, code string, sessionID string, details string) *SessionError {
	return &SessionError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}
