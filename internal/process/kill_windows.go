//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillTree force-kills pid and its children with taskkill /F /T.
// It reports whether taskkill succeeded; pid <= 0 is refused.
func KillTree(pid int) bool {
	if pid <= 0 {
		return false
	}
	return exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() == nil
}
