package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/leighmacdonald/lb-tui/internal/config"
	"github.com/spf13/cobra"
)

var errConfigExists = errors.New("config file already exists")

var (
	initForce bool
	initCmd   = &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Args:  cobra.NoArgs,
		RunE:  writeConfig,
	}
)

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func writeConfig(cmd *cobra.Command, _ []string) error {
	target := cfgFile
	if target == "" {
		target = config.Path(config.DefaultConfigName + ".yaml")
	}

	if _, err := os.Stat(target); err == nil && !initForce {
		return errors.Join(fmt.Errorf("%w: %s", errConfigExists, target), errApp)
	}

	// Read from the search paths only, the target itself may not exist yet.
	loader := config.NewLoader("", nil)

	userConfig, errRead := loader.Read()
	if errRead != nil {
		return errors.Join(errRead, errApp)
	}

	if err := loader.Write(target, applyFlags(userConfig)); err != nil {
		return errors.Join(err, errApp)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", target)

	return nil
}
