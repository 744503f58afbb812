package spinner

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhileRendersAndClears(t *testing.T) {
	var buf bytes.Buffer
	err := While(&buf, "working", func() error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "working")
	// The final write clears the line: len("working")+2 spaces.
	assert.Contains(t, out, "\r         \r")
}

func TestWhilePropagatesError(t *testing.T) {
	var buf bytes.Buffer
	wantErr := errors.New("scenario failed")
	err := While(&buf, "working", func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}
