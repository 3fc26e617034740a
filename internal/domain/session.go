package domain

import "time"

// Session guarda as premissas de custo de um usuário do painel, apenas em memória
type Session struct {
	ID         string          `json:"id"`
	Costs      CostAssumptions `json:"costs"`
	CreatedAt  time.Time       `json:"created_at"`
	LastSeenAt time.Time       `json:"last_seen_at"`
}
