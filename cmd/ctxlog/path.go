package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/trickstertwo/ctxlog"
)

func newPathCmd(root *rootOptions) *cobra.Command {
	var ensure, dirOnly bool
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the file the next record would be written to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			r := ctxlog.NewResolver(afero.NewOsFs())
			d := cfg.NewDestination()

			var path string
			switch {
			case dirOnly:
				path, err = r.Directory(d)
			case ensure:
				path, err = r.PreparePath(d)
			default:
				path, err = r.ResolvePath(d)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().BoolVar(&ensure, "ensure", false, "also create the log directory when missing")
	cmd.Flags().BoolVar(&dirOnly, "dir", false, "print only the log directory")
	return cmd
}
