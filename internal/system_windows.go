package internal

import (
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// platformVersion is the operating system version shown in the banner. It is
// declared in each platform-specific file so that a compilation error occurs
// on any platform on which it is not implemented.
var platformVersion string

func initPV() {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		// GetVersion is still better than giving up.
		initWinVerGV()
		return
	}
	defer k.Close()
	platformVersion, _, err = k.GetStringValue("CurrentVersion")
	if err != nil {
		initWinVerGV()
	}
}

func initWinVerGV() {
	v, err := windows.GetVersion()
	if err != nil {
		platformVersion = ""
		return
	}
	platformVersion = fmt.Sprintf("Windows %d.%d", v&0xff, v>>8&0xff)
}
