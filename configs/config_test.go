package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		configYAML string
		want       func(t *testing.T, s *Settings)
		wantErr    string
	}{
		{
			name: "defaults",
			want: func(t *testing.T, s *Settings) {
				assert.Equal(t, "8080", s.Port)
				assert.Equal(t, "sqlite", s.DBDriver)
				assert.Equal(t, "errorpaper.db", s.DatabaseURL)
				assert.Equal(t, "mock", s.AIProvider)
				assert.Equal(t, 30*time.Second, s.AITimeout)
				assert.Equal(t, uint(2), s.AIRetryAttempts)
				assert.Equal(t, "tesseract", s.OCRBinary)
				assert.Equal(t, "eng", s.OCRLanguage)
				assert.Equal(t, "@hourly", s.OrphanSweepSchedule)
			},
		},
		{
			name: "environment overrides",
			env: map[string]string{
				"PORT":           "9090",
				"DB_DRIVER":      "postgres",
				"DATABASE_URL":   "postgres://u:p@localhost/errorpaper",
				"AI_PROVIDER":    "openai",
				"OPENAI_API_KEY": "sk-test",
				"AI_TIMEOUT":     "5s",
			},
			want: func(t *testing.T, s *Settings) {
				assert.Equal(t, "9090", s.Port)
				assert.Equal(t, "postgres", s.DBDriver)
				assert.Equal(t, "openai", s.AIProvider)
				assert.Equal(t, "sk-test", s.OpenAIAPIKey)
				assert.Equal(t, 5*time.Second, s.AITimeout)
			},
		},
		{
			name:       "config file",
			configYAML: "port: \"7070\"\nocr_language: deu\n",
			want: func(t *testing.T, s *Settings) {
				assert.Equal(t, "7070", s.Port)
				assert.Equal(t, "deu", s.OCRLanguage)
			},
		},
		{
			name:    "missing provider key",
			env:     map[string]string{"AI_PROVIDER": "anthropic"},
			wantErr: "ANTHROPIC_API_KEY",
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"DB_DRIVER": "oracle"},
			wantErr: "DB_DRIVER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var configFile string
			if tt.configYAML != "" {
				configFile = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(configFile, []byte(tt.configYAML), 0o600))
			}

			got, err := Load(configFile)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.want(t, got)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
