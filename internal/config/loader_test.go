package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Count    uint8         `mapstructure:"count"`
	Ratio    float64       `mapstructure:"ratio"`
	Interval time.Duration `mapstructure:"interval"`
	Name     string        `mapstructure:"name"`
	Enabled  bool          `mapstructure:"enabled"`
}

func (c *testConfig) AddFlags(fs *pflag.FlagSet) {
	fs.Uint8Var(&c.Count, "count", c.Count, "Count")
	fs.Float64Var(&c.Ratio, "ratio", c.Ratio, "Ratio")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "Interval")
	fs.StringVar(&c.Name, "name", c.Name, "Name")
	fs.BoolVar(&c.Enabled, "enabled", c.Enabled, "Enabled")
	fs.Bool("version", false, "Show version")
}

func newLoader() *Loader {
	l := NewLoader()
	l.SetEnvPrefix("loadertest")
	l.SetDefaults(map[string]any{
		"count":    uint8(1),
		"ratio":    0.5,
		"interval": 100 * time.Millisecond,
		"name":     "default",
		"enabled":  false,
	})
	return l
}

func parse(t *testing.T, args ...string) (*testConfig, *pflag.FlagSet) {
	t.Helper()
	cfg := &testConfig{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, fs
}

func TestLoaderDefaults(t *testing.T) {
	cfg, fs := parse(t)
	require.NoError(t, newLoader().LoadConfigWithFlagSet(cfg, fs))

	assert.Equal(t, uint8(1), cfg.Count)
	assert.Equal(t, 0.5, cfg.Ratio)
	assert.Equal(t, 100*time.Millisecond, cfg.Interval)
	assert.Equal(t, "default", cfg.Name)
	assert.False(t, cfg.Enabled)
}

func TestLoaderFlagsOverrideDefaults(t *testing.T) {
	cfg, fs := parse(t, "--count", "7", "--ratio", "0.25", "--interval", "20ms", "--enabled", "--version")
	require.NoError(t, newLoader().LoadConfigWithFlagSet(cfg, fs))

	assert.Equal(t, uint8(7), cfg.Count)
	assert.Equal(t, 0.25, cfg.Ratio)
	assert.Equal(t, 20*time.Millisecond, cfg.Interval)
	assert.True(t, cfg.Enabled)
}

func TestLoaderEnvironment(t *testing.T) {
	t.Setenv("LOADERTEST_INTERVAL", "1s")
	t.Setenv("LOADERTEST_NAME", "from-env")
	t.Setenv("LOADERTEST_COUNT", "3")

	cfg, fs := parse(t, "--name", "from-flag")
	require.NoError(t, newLoader().LoadConfigWithFlagSet(cfg, fs))

	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, uint8(3), cfg.Count)
	assert.Equal(t, "from-flag", cfg.Name)
}

func TestLoaderNotPointer(t *testing.T) {
	err := newLoader().LoadConfigWithFlagSet(testConfig{}, nil)
	assert.ErrorIs(t, err, ErrConfigNotPointer)
}

func TestLoaderBadValue(t *testing.T) {
	t.Setenv("LOADERTEST_INTERVAL", "soon")

	cfg, fs := parse(t)
	err := newLoader().LoadConfigWithFlagSet(cfg, fs)
	assert.ErrorIs(t, err, ErrConfigUnmarshal)
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "poll_interval", FlagKey("poll-interval"))
	assert.Equal(t, "x_channel", FlagKey("x-channel"))
}
