package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/wxl"
	"gitlab.com/tozd/go/errors"
)

func newLintWxlCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint-wxl <glob>...",
		Short: "Parse localization files and report every diagnostic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fsys := afero.NewOsFs()
			collector := messages.NewCollector()

			var ioErrs *multierror.Error
			total := 0
			for _, pattern := range args {
				units, err := wxl.LoadGlob(ctx, fsys, pattern, collector)
				if err != nil {
					ioErrs = multierror.Append(ioErrs, err)
				}
				total += len(units)
			}

			for _, m := range collector.Messages {
				fmt.Fprintln(cmd.ErrOrStderr(), m.Error())
			}
			if err := ioErrs.ErrorOrNil(); err != nil {
				return errors.Errorf("reading localization files: %w", err)
			}

			zerolog.Ctx(ctx).Info().
				Int("valid_units", total).
				Int("diagnostics", len(collector.Messages)).
				Msg("lint complete")

			if collector.EncounteredError() {
				return errors.New("localization files contain errors")
			}
			return nil
		},
	}
}
