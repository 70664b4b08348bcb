//go:build unix

package internal

import (
	"bytes"
	"fmt"

	"golang.org/x/sys/unix"
)

// platformVersion is the operating system version shown in the banner. It is
// declared in each platform-specific file so that a compilation error occurs
// on any platform on which it is not implemented.
var platformVersion string

func initPV() {
	var uname unix.Utsname
	if unix.Uname(&uname) == nil {
		s, r := uname.Sysname[:], uname.Release[:]
		platformVersion = fmt.Sprintf("%s %s", bytes.Trim(s, "\x00"), bytes.Trim(r, "\x00"))
	}
	// If uname failed, we don't have anything else to try.
}
