//go:build windows

package launch

import (
	"fmt"
	"os"
	"os/exec"
)

// Run starts the delegate command with inherited stdio and exits with its
// status. Windows has no execve, so spawn-and-exit is the closest
// equivalent of process replacement.
func Run(binary string, args []string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("find %s: %w", binary, err)
	}
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("run %s: %w", binary, err)
	}
	os.Exit(0)
	return nil
}
