//go:build windows

package player

import (
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
