package config

import (
	"github.com/spf13/viper"
)

// DemoConfig controls the demo harness: which pricing policy the ledger is
// built with and the currency label used in narration. The library itself
// takes no configuration.
type DemoConfig struct {
	PricingPolicy string
	Currency      string
}

// LoadDemoConfig reads the demo configuration from a .env file if present,
// with environment variables taking precedence.
func LoadDemoConfig() *DemoConfig {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.ReadInConfig()

	viper.SetDefault("demo.pricing_policy", "flat")
	viper.SetDefault("demo.currency", "USD")

	viper.BindEnv("demo.pricing_policy", "DEMO_PRICING_POLICY")
	viper.BindEnv("demo.currency", "DEMO_CURRENCY")

	return &DemoConfig{
		PricingPolicy: viper.GetString("demo.pricing_policy"),
		Currency:      viper.GetString("demo.currency"),
	}
}
