package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Shopify        Shopify        `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	TikTok         TikTok         `mapstructure:",squash"`
	ProviderHTTP   ProviderHTTP   `mapstructure:",squash"`
	Aggregation    Aggregation    `mapstructure:",squash"`
	CostDefaults   CostDefaults   `mapstructure:",squash"`
	Session        Session        `mapstructure:",squash"`
	SessionCleanup SessionCleanup `mapstructure:",squash"`
	DailyReport    DailyReport    `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Shopify struct {
	ShopDomain  string `mapstructure:"shopify_shop_domain"`
	AccessToken string `mapstructure:"shopify_access_token"`
	APIVersion  string `mapstructure:"shopify_api_version"`
	BaseURL     string `mapstructure:"shopify_base_url"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type TikTok struct {
	BaseURL      string `mapstructure:"tiktok_base_url"`
	AdvertiserID string `mapstructure:"tiktok_advertiser_id"`
	AccessToken  string `mapstructure:"tiktok_access_token"`
}

// ProviderHTTP contém os parâmetros comuns dos clientes HTTP dos provedores
type ProviderHTTP struct {
	Timeout        time.Duration `mapstructure:"provider_http_timeout"`
	MaxRetries     int           `mapstructure:"provider_max_retries"`
	RetryBaseDelay time.Duration `mapstructure:"provider_retry_base_delay"`
}

type Aggregation struct {
	OrdersTimeout  time.Duration `mapstructure:"aggregation_orders_timeout"`
	AdSpendTimeout time.Duration `mapstructure:"aggregation_ad_spend_timeout"`
}

// CostDefaults são as premissas de custo usadas quando a sessão não define outras
type CostDefaults struct {
	UnitCOGS          decimal.Decimal `mapstructure:"cost_default_unit_cogs"`
	UnitShipping      decimal.Decimal `mapstructure:"cost_default_unit_shipping"`
	MonthlyFixedCosts decimal.Decimal `mapstructure:"cost_default_monthly_fixed_costs"`
}

type Session struct {
	TTL time.Duration `mapstructure:"session_ttl"`
}

type SessionCleanup struct {
	CronSchedule string `mapstructure:"session_cleanup_cron"`
	Enabled      bool   `mapstructure:"session_cleanup_enabled"`
}

type DailyReport struct {
	CronSchedule string `mapstructure:"daily_report_cron"`
	Enabled      bool   `mapstructure:"daily_report_enabled"`
}

// Missing lista as variáveis obrigatórias ausentes para o provedor de pedidos
func (s Shopify) Missing() []string {
	return missingKeys(map[string]string{
		"SHOPIFY_SHOP_DOMAIN":  s.ShopDomain,
		"SHOPIFY_ACCESS_TOKEN": s.AccessToken,
	})
}

// Missing lista as variáveis obrigatórias ausentes para o Meta
func (m Meta) Missing() []string {
	return missingKeys(map[string]string{
		"META_AD_ACCOUNT_ID": m.AdAccountID,
		"META_ACCESS_TOKEN":  m.AccessToken,
	})
}

// Missing lista as variáveis obrigatórias ausentes para o TikTok
func (t TikTok) Missing() []string {
	return missingKeys(map[string]string{
		"TIKTOK_ADVERTISER_ID": t.AdvertiserID,
		"TIKTOK_ACCESS_TOKEN":  t.AccessToken,
	})
}

func missingKeys(values map[string]string) []string {
	missing := make([]string, 0)
	for key, value := range values {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_TIMEZONE", "UTC")

	// Credenciais sem valor padrão: registradas vazias para que o AutomaticEnv as encontre
	viper.SetDefault("SHOPIFY_SHOP_DOMAIN", "")
	viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "")
	viper.SetDefault("SHOPIFY_API_VERSION", "2023-10")
	viper.SetDefault("SHOPIFY_BASE_URL", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_ACCESS_TOKEN", "")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com")
	viper.SetDefault("TIKTOK_ADVERTISER_ID", "")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "")

	viper.SetDefault("PROVIDER_HTTP_TIMEOUT", "30s")
	viper.SetDefault("PROVIDER_MAX_RETRIES", 2)
	viper.SetDefault("PROVIDER_RETRY_BASE_DELAY", "200ms")

	viper.SetDefault("AGGREGATION_ORDERS_TIMEOUT", "45s")
	viper.SetDefault("AGGREGATION_AD_SPEND_TIMEOUT", "15s")

	// Valores iniciais do painel original
	viper.SetDefault("COST_DEFAULT_UNIT_COGS", "12.50")
	viper.SetDefault("COST_DEFAULT_UNIT_SHIPPING", "4.30")
	viper.SetDefault("COST_DEFAULT_MONTHLY_FIXED_COSTS", "2500")

	viper.SetDefault("SESSION_TTL", "12h")
	viper.SetDefault("SESSION_CLEANUP_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	viper.SetDefault("DAILY_REPORT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("DAILY_REPORT_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			StringToDecimalHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa os campos derivados depois da leitura do ambiente
func (c *Config) normalize() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)

	if c.Shopify.BaseURL == "" && c.Shopify.ShopDomain != "" {
		c.Shopify.BaseURL = "https://" + strings.TrimPrefix(c.Shopify.ShopDomain, "https://")
	}

	if c.ProviderHTTP.MaxRetries < 0 {
		c.ProviderHTTP.MaxRetries = 0
	}

	return nil
}

// StringToDecimalHookFunc converte strings e números em decimal.Decimal
func StringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(decimal.Decimal{}) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return decimal.Zero, nil
			}
			return decimal.NewFromString(strings.TrimSpace(v))
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		}

		return data, nil
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
