package main

import (
	"github.com/spf13/cobra"

	"github.com/trickstertwo/ctxlog/config"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "ctxlog",
		Short:         "Write log records to dynamically located files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file (CTXLOG_* env vars override it)")

	cmd.AddCommand(newWriteCmd(opts), newPathCmd(opts))
	return cmd
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.configPath)
}
