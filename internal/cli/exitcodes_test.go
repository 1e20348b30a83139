package cli_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jandent/internal/cli"
	"github.com/yaklabco/jandent/internal/configloader"
	"github.com/yaklabco/jandent/pkg/lint"
)

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "findings", err: cli.ErrFindingsPresent, want: cli.ExitFindings},
		{name: "usage", err: fmt.Errorf("%w: bad flag", cli.ErrUsage), want: cli.ExitInvalidUsage},
		{name: "config", err: fmt.Errorf("load: %w", configloader.ErrInvalidConfig), want: cli.ExitConfigError},
		{name: "migration", err: configloader.ErrMigration, want: cli.ExitConfigError},
		{name: "files failed", err: cli.ErrFilesFailed, want: cli.ExitIOError},
		{name: "decode", err: fmt.Errorf("x: %w", lint.ErrDecodeFailure), want: cli.ExitIOError},
		{name: "path error", err: &fs.PathError{Op: "stat", Path: "a.txt", Err: fs.ErrNotExist}, want: cli.ExitIOError},
		{name: "other", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
		})
	}
}
