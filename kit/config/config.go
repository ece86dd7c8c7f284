// Package config loads the settings shared by the checkout web server and
// the payment API. Values come from a YAML file and are overridden by
// environment variables.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	IsDebug bool `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	Web     struct {
		Addr           string        `yaml:"addr" env:"WEB_ADDR" env-default:":8080"`
		PublicURL      string        `yaml:"public_url" env:"WEB_PUBLIC_URL" env-default:"http://localhost:8080" env-description:"base URL the browser uses to reach the checkout page"`
		BackendURL     string        `yaml:"backend_url" env:"WEB_BACKEND_URL" env-default:"http://localhost:8000"`
		BackendTimeout time.Duration `yaml:"backend_timeout" env:"WEB_BACKEND_TIMEOUT" env-default:"15s"`
	} `yaml:"web"`
	API struct {
		Addr string `yaml:"addr" env:"API_ADDR" env-default:":8000"`
	} `yaml:"api"`
	PayPal struct {
		ClientID     string `yaml:"client_id" env:"PAYPAL_CLIENT_ID" env-default:""`
		ClientSecret string `yaml:"client_secret" env:"PAYPAL_CLIENT_SECRET" env-default:""`
		Mode         string `yaml:"mode" env:"PAYPAL_MODE" env-default:"sandbox" env-description:"sandbox or live"`
		ProductID    string `yaml:"product_id" env:"PAYPAL_PRODUCT_ID" env-default:""`
		BrandName    string `yaml:"brand_name" env:"PAYPAL_BRAND_NAME" env-default:"Your Brand"`
		Fake         bool   `yaml:"fake" env:"PAYPAL_FAKE" env-default:"false" env-description:"serve the API from an in-process fake gateway"`
	} `yaml:"paypal"`
}

var (
	instance *Config
	once     sync.Once
)

// Load reads the config from path, or from the environment alone when path
// is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("load config: %w; %s", err, desc)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfig loads the config once per process.
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance, err = Load(path)
	})
	return instance, err
}

func (c *Config) IsLive() bool {
	return c.PayPal.Mode == "live"
}

func (c *Config) validate() error {
	switch c.PayPal.Mode {
	case "sandbox", "live":
	default:
		return fmt.Errorf("load config: unknown paypal mode %q", c.PayPal.Mode)
	}
	if c.Web.BackendTimeout < 0 {
		return fmt.Errorf("load config: negative backend timeout %s", c.Web.BackendTimeout)
	}
	return nil
}
