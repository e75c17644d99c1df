// Package config loads settings with the precedence
// defaults < environment < explicitly set flags.
package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configurable represents a type that can be configured via flags.
type Configurable interface {
	AddFlags(fs *pflag.FlagSet)
}

// Loader assembles configuration from defaults, the environment and a
// flag set.
type Loader struct {
	defaults  map[string]any
	envPrefix string
}

func NewLoader() *Loader {
	return &Loader{
		defaults: make(map[string]any),
	}
}

// SetDefault sets a default value for a configuration key. Only keys with a
// default are looked up in the environment.
func (l *Loader) SetDefault(key string, value any) {
	l.defaults[key] = value
}

func (l *Loader) SetDefaults(defaults map[string]any) {
	for key, value := range defaults {
		l.defaults[key] = value
	}
}

// SetEnvPrefix enables environment lookups: key "poll_interval" with
// prefix "joymouse" reads JOYMOUSE_POLL_INTERVAL.
func (l *Loader) SetEnvPrefix(prefix string) {
	l.envPrefix = prefix
}

// FlagKey converts a flag name to a configuration key: hyphens become
// underscores.
func FlagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// LoadConfigWithFlagSet decodes the merged settings into config, which must
// be a pointer to a struct with mapstructure tags.
func (l *Loader) LoadConfigWithFlagSet(config any, fs *pflag.FlagSet) error {
	if v := reflect.ValueOf(config); v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("%w: got %T", ErrConfigNotPointer, config)
	}

	v := viper.New()

	for key, value := range l.defaults {
		v.SetDefault(key, value)
	}

	if l.envPrefix != "" {
		v.SetEnvPrefix(l.envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
	}

	// Only flags the user actually set override the environment.
	if fs != nil {
		fs.Visit(func(flag *pflag.Flag) {
			key := FlagKey(flag.Name)
			if _, known := l.defaults[key]; !known {
				return
			}
			v.Set(key, flagValue(flag))
		})
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		ErrorUnused:      true,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create decoder: %v", ErrConfigUnmarshal, err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigUnmarshal, err)
	}

	return nil
}

// flagValue returns the typed value of a flag rather than its string form.
func flagValue(flag *pflag.Flag) any {
	str := flag.Value.String()
	switch flag.Value.Type() {
	case "uint", "uint8", "uint16", "uint32", "uint64":
		if val, err := strconv.ParseUint(str, 10, 64); err == nil {
			return val
		}
	case "int", "int8", "int16", "int32", "int64":
		if val, err := strconv.ParseInt(str, 10, 64); err == nil {
			return val
		}
	case "bool":
		if val, err := strconv.ParseBool(str); err == nil {
			return val
		}
	case "float32", "float64":
		if val, err := strconv.ParseFloat(str, 64); err == nil {
			return val
		}
	case "stringSlice":
		if sliceFlag, ok := flag.Value.(pflag.SliceValue); ok {
			return sliceFlag.GetSlice()
		}
	}
	return str
}
