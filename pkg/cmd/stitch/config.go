// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package stitch

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "yambler"

	inputKey      = "input"
	outputKey     = "output"
	snipsKey      = "snips"
	debugKey      = "debug"
	configKey     = "config"
	minVersionKey = "min-version"
)

// ResolveConfig fills options from flags, YAMBLER_* environment variables
// and the config file, in that order of precedence. Extra arguments are
// taken as additional snippet files so that "-s a.yml b.yml" works.
func (o *StitchOptions) ResolveConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	err := bindFlags(v, cmd.Flags())
	if err != nil {
		return err
	}

	if configFile := v.GetString(configKey); len(configFile) > 0 {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")

		err = v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("Reading config file '%s': %w", configFile, err)
		}
	}

	o.ConfigFile = v.GetString(configKey)
	o.InputPath = v.GetString(inputKey)
	o.OutputPath = v.GetString(outputKey)
	o.SnipPaths = append(splitPaths(v.GetStringSlice(snipsKey)), args...)
	o.Debug = v.GetBool(debugKey)
	o.MinVersion = v.GetString(minVersionKey)

	return o.validate()
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{inputKey, outputKey, snipsKey, debugKey, configKey, minVersionKey} {
		err := v.BindPFlag(key, flags.Lookup(key))
		if err != nil {
			return fmt.Errorf("Binding flag '%s': %w", key, err)
		}
	}
	return nil
}

// splitPaths accepts comma separated lists within each value
// (as given through YAMBLER_SNIPS).
func splitPaths(vals []string) []string {
	var result []string
	for _, val := range vals {
		for _, path := range strings.Split(val, ",") {
			if len(path) > 0 {
				result = append(result, path)
			}
		}
	}
	return result
}

func (o *StitchOptions) validate() error {
	var missing []string

	if len(o.InputPath) == 0 {
		missing = append(missing, "--"+inputKey)
	}
	if len(o.OutputPath) == 0 {
		missing = append(missing, "--"+outputKey)
	}
	if len(o.SnipPaths) == 0 {
		missing = append(missing, "--"+snipsKey)
	}

	if len(missing) > 0 {
		return fmt.Errorf("Expected %s to be specified (via flags, YAMBLER_* environment variables or config file)",
			strings.Join(missing, ", "))
	}
	return nil
}
