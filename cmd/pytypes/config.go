package main

import (
	"errors"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/pytypes"
)

// initConfig layers the config file and environment under the flags. Every
// flag may also be set as PYTYPES_<FLAG>; NO_COLOR is honored as well.
func initConfig() error {
	viper.SetEnvPrefix("pytypes")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("no-color", "PYTYPES_NO_COLOR", "NO_COLOR"); err != nil {
		return err
	}

	if path := viper.GetString("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	} else {
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".pytypes")
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return err
			}
		}
	}
	processGlobalFlags()
	return nil
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") || !isTerminalOutput() {
		color.NoColor = true
	}
}

func getLogger() zerolog.Logger {
	if !viper.GetBool("debug") {
		return zerolog.Nop()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

func getOptions() []pytypes.Option {
	opts := []pytypes.Option{
		pytypes.WithLogger(getLogger()),
	}
	if viper.GetBool("no-suggestions") {
		opts = append(opts, pytypes.WithoutSuggestions())
	}
	return opts
}
