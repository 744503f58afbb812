// Package spinner renders a terminal progress indicator for long-running
// work such as multi-scenario simulation runs.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"time"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// While runs fn with an animated spinner and message shown on w, clearing
// the line once fn returns. fn's error is returned unchanged.
func While(w io.Writer, message string, fn func() error) error {
	done := make(chan struct{})
	cleared := make(chan struct{})

	go func() {
		defer close(cleared)
		i := 0
		for {
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", len(message)+2)) //nolint:errcheck
				return
			case <-time.After(80 * time.Millisecond):
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], message) //nolint:errcheck
				i++
			}
		}
	}()

	err := fn()
	close(done)
	<-cleared
	return err
}
