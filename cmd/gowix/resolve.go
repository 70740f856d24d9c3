package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/gowix/pkg/bindvars"
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
	"github.com/walteh/gowix/pkg/wxl"
	"gitlab.com/tozd/go/errors"
)

func newResolveCommand() *cobra.Command {
	var (
		configPath   string
		locGlobs     []string
		defines      []string
		locOnly      bool
		allowUnknown bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <text>",
		Short: "Resolve localization and build variables in a text fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fsys := afero.NewOsFs()
			collector := messages.NewCollector()
			resolver := bindvars.NewResolver(collector)

			if configPath != "" {
				cfg, err := loadConfig(fsys, configPath)
				if err != nil {
					return err
				}
				cfgLoc := source.New(configPath, 0, 0)
				for _, v := range cfg.Variables {
					resolver.AddVariable(cfgLoc, v.Name, v.Value, v.Overridable)
				}
				locGlobs = append(cfg.Localization, locGlobs...)
			}

			for _, pattern := range locGlobs {
				units, err := wxl.LoadGlob(ctx, fsys, pattern, collector)
				if err != nil {
					return err
				}
				for _, unit := range units {
					resolver.AddLocalization(unit)
				}
			}

			for _, def := range defines {
				name, value, ok := strings.Cut(def, "=")
				if !ok || name == "" {
					return errors.Errorf("define %q is not of the form name=value", def)
				}
				resolver.AddVariable(source.Unknown, name, value, false)
			}

			loc := source.New("<arg>", 0, 0)
			var res bindvars.Resolution
			if allowUnknown {
				res = resolver.ResolveVariablesWithUnknowns(loc, args[0], locOnly)
			} else {
				res = resolver.ResolveVariables(loc, args[0], locOnly)
			}

			for _, m := range collector.Messages {
				fmt.Fprintln(cmd.ErrOrStderr(), m.Error())
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			if res.DelayedResolve {
				fmt.Fprintln(cmd.ErrOrStderr(), "note: text contains bind-time references and needs a later pass")
			}

			if collector.EncounteredError() {
				return errors.New("resolution produced errors")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a .gowix.hcl project file")
	cmd.Flags().StringArrayVar(&locGlobs, "loc", nil, "localization file glob (repeatable)")
	cmd.Flags().StringArrayVarP(&defines, "define", "d", nil, "build variable as name=value (repeatable)")
	cmd.Flags().BoolVar(&locOnly, "loc-only", false, "resolve only the localization namespace")
	cmd.Flags().BoolVar(&allowUnknown, "allow-unknown", false, "leave unknown variables in place without diagnostics")

	return cmd
}
