package docs

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

// violations returns the messages of every error collected in err
func violations(t *testing.T, err error) []string {
	t.Helper()

	if err == nil {
		return nil
	}

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected a multierror, got %T", err)

	msgs := make([]string, len(merr.Errors))
	for i, e := range merr.Errors {
		msgs[i] = e.Error()
	}

	return msgs
}
