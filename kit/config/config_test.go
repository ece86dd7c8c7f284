package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	var tests = []struct {
		name        string
		yaml        string
		env         map[string]string
		assert      func(t *testing.T, c *Config)
		expectedErr bool
	}{
		{
			name: "defaults from env only",
			assert: func(t *testing.T, c *Config) {
				require.Equal(t, ":8080", c.Web.Addr)
				require.Equal(t, "http://localhost:8000", c.Web.BackendURL)
				require.Equal(t, 15*time.Second, c.Web.BackendTimeout)
				require.Equal(t, ":8000", c.API.Addr)
				require.Equal(t, "sandbox", c.PayPal.Mode)
				require.False(t, c.IsLive())
			},
		},
		{
			name: "yaml values",
			yaml: "web:\n  public_url: https://shop.example\n  backend_timeout: 3s\npaypal:\n  mode: live\n  brand_name: Acme\n",
			assert: func(t *testing.T, c *Config) {
				require.Equal(t, "https://shop.example", c.Web.PublicURL)
				require.Equal(t, 3*time.Second, c.Web.BackendTimeout)
				require.Equal(t, "Acme", c.PayPal.BrandName)
				require.True(t, c.IsLive())
			},
		},
		{
			name: "env overrides yaml",
			yaml: "web:\n  backend_url: http://from-yaml\n",
			env:  map[string]string{"WEB_BACKEND_URL": "http://from-env"},
			assert: func(t *testing.T, c *Config) {
				require.Equal(t, "http://from-env", c.Web.BackendURL)
			},
		},
		{
			name:        "unknown mode",
			env:         map[string]string{"PAYPAL_MODE": "staging"},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.yaml != "" {
				path = filepath.Join(t.TempDir(), "config.yml")
				require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))
			}

			c, err := Load(path)
			if tt.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.assert(t, c)
		})
	}
}
