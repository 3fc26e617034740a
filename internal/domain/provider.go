package domain

// ProviderID identifica uma fonte de dados externa
type ProviderID string

const (
	ProviderShopify ProviderID = "shopify"
	ProviderMeta    ProviderID = "meta"
	ProviderTikTok  ProviderID = "tiktok"
)

// AdProviders lista os provedores de anúncios conhecidos, na ordem de apresentação
var AdProviders = []ProviderID{ProviderMeta, ProviderTikTok}

// ProviderState descreve o resultado de um provedor em uma agregação
type ProviderState string

const (
	ProviderStateOK           ProviderState = "ok"
	ProviderStateDegraded     ProviderState = "degraded"
	ProviderStateUnconfigured ProviderState = "unconfigured"
)

// ProviderStatus é o relatório de configuração de um provedor
type ProviderStatus struct {
	Provider   ProviderID `json:"provider"`
	Configured bool       `json:"configured"`
	Required   bool       `json:"required"`
	Missing    []string   `json:"missing,omitempty"`
}
