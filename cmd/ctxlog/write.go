package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/trickstertwo/ctxlog"
)

func newWriteCmd(root *rootOptions) *cobra.Command {
	var (
		level string
		pairs []string
	)
	cmd := &cobra.Command{
		Use:   "write [flags] message...",
		Short: "Write one record and print the file it went to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := ctxlog.ParseLevel(level)
			if err != nil {
				return err
			}
			ctx, err := parsePairs(pairs)
			if err != nil {
				return err
			}
			cfg, err := root.load()
			if err != nil {
				return err
			}

			fl, err := cfg.Build(afero.NewOsFs())
			if err != nil {
				return err
			}
			writeErr := fl.Log(lvl, strings.Join(args, " "), ctx)
			closeErr := fl.Close()
			if err := errors.CombineErrors(writeErr, closeErr); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fl.Path())
			return err
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", "info", "severity: debug|info|notice|warning|error|critical|alert|emergency")
	cmd.Flags().StringArrayVar(&pairs, "set", nil, "context entry as key=value (repeatable)")
	return cmd
}

// parsePairs turns key=value arguments into a Context.
func parsePairs(pairs []string) (ctxlog.Context, error) {
	ctx := make(ctxlog.Context, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, errors.Newf("invalid context entry %q, want key=value", p)
		}
		ctx[k] = v
	}
	return ctx, nil
}
