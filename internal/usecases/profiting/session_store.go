package profiting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/domain"
	"github.com/vfg2006/profit-tracker-api/internal/metrics"
	"github.com/vfg2006/profit-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/profit-tracker-api/pkg/utils"
)

const sessionIDSize = 21

//go:generate mockgen -source=session_store.go -destination=mocks/session_store_mock.go -package=mocks

type SessionService interface {
	Create() (*domain.Session, error)
	Get(id string) (*domain.Session, error)
	UpdateCosts(id string, costs domain.CostAssumptions) (*domain.Session, error)
	// CostsFor retorna as premissas da sessão; id vazio usa os valores padrão
	CostsFor(id string) (domain.CostAssumptions, error)
	PurgeExpired() int
	Len() int
}

// SessionStore mantém as premissas de custo por sessão apenas em memória
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	defaults domain.CostAssumptions
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(cfg *config.Config) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		defaults: domain.CostAssumptions{
			UnitCOGS:          cfg.CostDefaults.UnitCOGS,
			UnitShipping:      cfg.CostDefaults.UnitShipping,
			MonthlyFixedCosts: cfg.CostDefaults.MonthlyFixedCosts,
		},
		ttl: cfg.Session.TTL,
		now: time.Now,
	}
}

func (s *SessionStore) Defaults() domain.CostAssumptions {
	return s.defaults
}

func (s *SessionStore) Create() (*domain.Session, error) {
	id, err := utils.GenerateID(sessionIDSize)
	if err != nil {
		return nil, NewSessionError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}

	now := s.now()
	session := &domain.Session{
		ID:         id,
		Costs:      s.defaults,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	s.mu.Lock()
	s.sessions[id] = session
	total := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(total))
	logrus.WithField("session_id", id).Debug("session: created")

	snapshot := *session
	return &snapshot, nil
}

func (s *SessionStore) Get(id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	session.LastSeenAt = s.now()
	snapshot := *session
	return &snapshot, nil
}

func (s *SessionStore) UpdateCosts(id string, costs domain.CostAssumptions) (*domain.Session, error) {
	if err := costs.Validate(); err != nil {
		return nil, NewSessionError(ErrInvalidCosts, apiErrors.ErrInvalidFormat, id, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	session.Costs = costs
	session.LastSeenAt = s.now()

	snapshot := *session
	return &snapshot, nil
}

func (s *SessionStore) CostsFor(id string) (domain.CostAssumptions, error) {
	if id == "" {
		return s.defaults, nil
	}

	session, err := s.Get(id)
	if err != nil {
		return domain.CostAssumptions{}, err
	}
	return session.Costs, nil
}

// PurgeExpired remove as sessões inativas há mais que o TTL e retorna quantas saíram
func (s *SessionStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			removed++
		}
	}

	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// lookup exige o lock de escrita já adquirido
func (s *SessionStore) lookup(id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok || s.expired(session) {
		return nil, NewSessionError(ErrSessionNotFound, apiErrors.ErrSessionNotFound, id, "")
	}
	return session, nil
}

func (s *SessionStore) expired(session *domain.Session) bool {
	return s.ttl > 0 && s.now().Sub(session.LastSeenAt) > s.ttl
}
