package decompile

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// ProcessResult captures one external tool invocation uniformly across
// engines: both adapters and the toolchain probe observe the same shape.
type ProcessResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// runProcess executes an external tool and captures its output. The context
// bounds the process lifetime; on expiry the process is killed and the
// returned error wraps context.DeadlineExceeded. A non-zero exit is not an
// error here: it is reported through ExitCode so callers can classify it.
func runProcess(ctx context.Context, name string, args ...string) (ProcessResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ProcessResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
