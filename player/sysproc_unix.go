//go:build !windows

package player

import (
	"syscall"
)

// sysProcAttr detaches the player from our process group so closing anidex leaves it running.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid: true,
	}
}
