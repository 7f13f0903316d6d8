package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: todo
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
secretKey:
  signing: "signing-from-file"
  server: "server-from-file"
auth:
  hashAlgorithm: bcrypt
  bcryptCost: 4
`

func writeTestConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := writeTestConfig(t, "unittest", testConfigYAML)
	t.Chdir(dir)
	t.Setenv("SECRETKEY_SIGNING", "signing-from-env")

	cfg, err := LoadWithEnv[Config]("unittest")
	require.NoError(t, err)

	assert.Equal(t, "todo", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "5s", cfg.HTTP.Timeouts.ReadTimeout.String())
	assert.Equal(t, "signing-from-env", cfg.SecretKey.Signing)
	assert.Equal(t, "server-from-file", cfg.SecretKey.Server)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, HashAlgorithmBcrypt, cfg.Auth.HashAlgorithm)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, HashAlgorithmArgon2id, cfg.Auth.HashAlgorithm)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, DefaultArgon2Config(), cfg.Auth.Argon2)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestConfig_Validate(t *testing.T) {
	newValid := func() *Config {
		cfg := &Config{SecretKey: SecretKeyConfig{Signing: "s", Server: "p"}}
		cfg.applyDefaults()

		return cfg
	}

	require.NoError(t, newValid().Validate())

	cfg := newValid()
	cfg.SecretKey.Signing = " "
	assert.ErrorContains(t, cfg.Validate(), "secretKey.signing")

	cfg = newValid()
	cfg.SecretKey.Server = ""
	assert.ErrorContains(t, cfg.Validate(), "secretKey.server")

	cfg = newValid()
	cfg.Auth.HashAlgorithm = "md5"
	assert.ErrorContains(t, cfg.Validate(), "md5")
}

func TestConfig_ApplyDefaults_PartialArgon2(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{Argon2: &Argon2Config{Memory: 19 * 1024, Iterations: 2}}}
	cfg.applyDefaults()

	def := DefaultArgon2Config()
	assert.Equal(t, &Argon2Config{
		Memory:      19 * 1024,
		Iterations:  2,
		Parallelism: def.Parallelism,
		SaltLength:  def.SaltLength,
		KeyLength:   def.KeyLength,
	}, cfg.Auth.Argon2)
}

func TestArgon2Config_Validate(t *testing.T) {
	require.NoError(t, DefaultArgon2Config().Validate())

	tests := []struct {
		name    string
		mutate  func(c *Argon2Config)
		wantErr string
	}{
		{name: "zero memory", mutate: func(c *Argon2Config) { c.Memory = 0 }, wantErr: "memory"},
		{name: "memory above 1 GiB", mutate: func(c *Argon2Config) { c.Memory = MaxArgon2Memory + 1 }, wantErr: "memory"},
		{name: "zero iterations", mutate: func(c *Argon2Config) { c.Iterations = 0 }, wantErr: "iterations"},
		{name: "zero parallelism", mutate: func(c *Argon2Config) { c.Parallelism = 0 }, wantErr: "parallelism"},
		{name: "parallelism above cap", mutate: func(c *Argon2Config) { c.Parallelism = MaxArgon2Parallelism + 1 }, wantErr: "parallelism"},
		{name: "unsalted", mutate: func(c *Argon2Config) { c.SaltLength = 0 }, wantErr: "saltLength"},
		{name: "short salt", mutate: func(c *Argon2Config) { c.SaltLength = 7 }, wantErr: "saltLength"},
		{name: "short key", mutate: func(c *Argon2Config) { c.KeyLength = 15 }, wantErr: "keyLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultArgon2Config()
			tt.mutate(c)

			assert.ErrorContains(t, c.Validate(), tt.wantErr)
		})
	}

	var missing *Argon2Config
	assert.Error(t, missing.Validate())
}

func TestConfig_Validate_RejectsWeakArgon2(t *testing.T) {
	cfg := &Config{SecretKey: SecretKeyConfig{Signing: "s", Server: "p"}}
	cfg.applyDefaults()
	cfg.Auth.Argon2.SaltLength = 4

	assert.ErrorContains(t, cfg.Validate(), "auth.argon2: saltLength")
}
