//go:build !windows

package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid, reaching the
// renderer and GPU children Chrome spawns. It reports whether a signal was
// sent; pid <= 0 is refused since -0 addresses the caller's own group.
func KillTree(pid int) bool {
	if pid <= 0 {
		return false
	}
	return syscall.Kill(-pid, syscall.SIGKILL) == nil
}
