package wizard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPolicyWizardNoPolicies(t *testing.T) {
	_, err := RunPolicyWizard(strings.NewReader(""), &bytes.Buffer{}, nil, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no policies")
}

func TestContains(t *testing.T) {
	require.True(t, contains([]string{"a", "b"}, "b"))
	require.False(t, contains([]string{"a", "b"}, "c"))
	require.False(t, contains(nil, "a"))
}
