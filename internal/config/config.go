package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix   = "LIFT"
	sink     = "sink"
	renderer = "renderer"
	logLevel = "log_level"

	SinkStdout  = "stdout"
	SinkLogrus  = "logrus"
	SinkZap     = "zap"
	SinkTracing = "tracing"

	RendererDefault = "default"
	RendererSpew    = "spew"

	defaultLogLevel = "info"
)

var v = viper.New()

func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			zap.S().Errorw("error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file %q: %w", configFile, err)
		}
		zap.S().Infof("using config file: %v", v.ConfigFileUsed())
	}

	// Bind the current command's flags to viper
	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// replace - with _ to match yaml format
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			// Environment variables can't have dashes in them, so bind them to their equivalent
			// keys with underscores.
			flagName = strings.ReplaceAll(f.Name, "-", "_")
			v.BindEnv(flagName, fmt.Sprintf("%s_%s", prefix, strings.ToUpper(flagName)))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		// and the other way around.
		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		} else if f.Changed {
			v.Set(flagName, f.Value.String())
		}
	})
}

func GetSink() string {
	return getOrDefault(sink, SinkStdout)
}

func GetRenderer() string {
	return getOrDefault(renderer, RendererDefault)
}

func GetLogLevel() string {
	return getOrDefault(logLevel, defaultLogLevel)
}

func getOrDefault(key, def string) string {
	if !v.IsSet(key) {
		return def
	}
	if s := v.GetString(key); s != "" {
		return strings.ToLower(s)
	}
	return def
}
