package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner abstracts one external importer invocation. Tests substitute a
// recording stub; production uses JavaRunner.
type Runner interface {
	Run(ctx context.Context, args ...string) error
}

// JavaRunner launches the collaborator JVM, streaming its stdout to Out and
// folding its stderr into the returned error on a non-zero exit.
type JavaRunner struct {
	// JavaBin is the java executable to invoke, usually just "java".
	JavaBin string
	Out     io.Writer
}

func (r *JavaRunner) Run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.JavaBin, args...)
	var stderr bytes.Buffer
	cmd.Stdout = r.Out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s exited with an error: %w: %s", r.JavaBin, err, msg)
		}
		return fmt.Errorf("%s exited with an error: %w", r.JavaBin, err)
	}
	return nil
}
