package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Execute runs the encoder command and consumes its progress stream until the
// process exits. Each out_time_ms line updates prog and invokes onProgress;
// all other progress keys are ignored. When verbose is set, encoder stderr is
// tee'd to os.Stderr in real time; otherwise it is captured silently for
// error reporting.
//
// A non-zero exit returns *ExitError. The partial output file is not removed.
func Execute(ctx context.Context, args []string, expectedSec float64, verbose bool, onProgress func(Progress)) error {
	if len(args) == 0 {
		return errors.New("empty encoder command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("encoder stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start encoder: %w", err)
	}

	// Single-threaded consumer loop: each Scan blocks until the encoder
	// produces more output or closes its end of the pipe.
	prog := Progress{ExpectedSec: expectedSec}
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		micros, ok := ParseOutTime(scanner.Text())
		if !ok {
			continue
		}
		prog.Update(micros)
		if onProgress != nil {
			onProgress(prog)
		}
	}

	err = cmd.Wait()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ExitError{ExitCode: code, Stderr: stderrTail(stderrBuf.String())}
}
