package build

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Runner invokes the project's build tool.
//
// Two invocation shapes exist. The probe build runs the project as-is with
// stderr piped, because the caller needs the diagnostic text to work out what
// went wrong. Trial builds run against an alternate manifest with stdio
// inherited, so the user watches compilation progress live instead of staring
// at a silent terminal for minutes.
type Runner struct {
	Command string // build tool binary, normally "cargo"
	Dir     string // project directory the build runs in
}

// NewRunner returns a Runner that shells out to cargo in dir.
func NewRunner(dir string) *Runner {
	return &Runner{Command: "cargo", Dir: dir}
}

// ProbeResult is the outcome of an unmodified build attempt.
type ProbeResult struct {
	Succeeded   bool
	Diagnostics string // captured stderr, empty on success is fine
}

// Probe runs `<command> build` and captures its stderr. A build that merely
// fails is a normal result, not an error; error is reserved for not being
// able to run the tool at all.
func (r *Runner) Probe() (ProbeResult, error) {
	cmd := exec.Command(r.Command, "build")
	cmd.Dir = r.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return ProbeResult{Succeeded: true, Diagnostics: stderr.String()}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ProbeResult{Succeeded: false, Diagnostics: stderr.String()}, nil
	}
	return ProbeResult{}, fmt.Errorf("running %s build: %w", r.Command, err)
}

// Trial runs `<command> build --manifest-path <manifestPath>` with stdout and
// stderr inherited. Returns whether the build succeeded.
func (r *Runner) Trial(manifestPath string) (bool, error) {
	cmd := exec.Command(r.Command, "build", "--manifest-path", manifestPath)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("running %s trial build: %w", r.Command, err)
}
