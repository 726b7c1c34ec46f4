package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/stretchr/testify/assert"

	"github.com/macropower/termbrot/internal/cli"
)

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      error
		wantHint bool
	}{
		"usage error": {
			err:      errors.New("unknown flag: --zoom"),
			wantHint: true,
		},
		"invalid argument": {
			err:      fmt.Errorf("%w: bad width", cli.ErrInvalidArgument),
			wantHint: true,
		},
		"runtime error": {
			err: errors.New("ui program failure"),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			cli.ErrorHandler(&buf, fang.Styles{}, tc.err)

			assert.Contains(t, buf.String(), tc.err.Error())

			if tc.wantHint {
				assert.Contains(t, buf.String(), "--help")
			} else {
				assert.NotContains(t, buf.String(), "--help")
			}
		})
	}
}
