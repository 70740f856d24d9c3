package wxl

import (
	"context"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/gowix/pkg/bindvars"
	"github.com/walteh/gowix/pkg/messages"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

// LoadGlob parses every localization file matching pattern, in sorted
// path order so merge precedence is deterministic. Units invalidated by
// diagnostics are omitted from the result; I/O failures are combined into
// the returned error.
func LoadGlob(ctx context.Context, fsys afero.Fs, pattern string, handler messages.Handler) ([]*bindvars.Localization, error) {
	paths, err := doublestar.Glob(afero.NewIOFS(fsys), pattern)
	if err != nil {
		return nil, errors.Errorf("globbing %q: %w", pattern, err)
	}
	sort.Strings(paths)

	var units []*bindvars.Localization
	var combined error
	for _, path := range paths {
		f, err := fsys.Open(path)
		if err != nil {
			combined = multierr.Append(combined, errors.Errorf("opening %s: %w", path, err))
			continue
		}
		unit, err := Parse(ctx, f, path, handler)
		f.Close()
		if err != nil {
			combined = multierr.Append(combined, err)
			continue
		}
		if unit == nil {
			zerolog.Ctx(ctx).Debug().Str("file", path).Msg("localization unit discarded after diagnostics")
			continue
		}
		units = append(units, unit)
	}
	return units, combined
}
