package internal

import (
	"fmt"
	"runtime"
	"sync"

	"gitlab.com/variadico/lctime"
)

// Version is the interpreter version reported in the banner.
const Version = "1"

// DefaultTimeFormat is the strftime format of the start time in the banner.
const DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"

var pvOnce sync.Once

// PlatformVersion returns the version of the operating system, or the empty
// string if it could not be determined.
func PlatformVersion() string {
	pvOnce.Do(initPV)
	return platformVersion
}

// Banner describes the interpreter, the platform, and the time the VM was
// created. The time is formatted with the strftime directives in timeFormat,
// or with DefaultTimeFormat if it is empty.
func (vm *VM) Banner(timeFormat string) string {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	platform := runtime.GOOS + "/" + runtime.GOARCH
	if pv := PlatformVersion(); pv != "" {
		platform += " " + pv
	}
	return fmt.Sprintf("Velo %s (%s, %s) started %s", Version, runtime.Version(), platform, lctime.Strftime(timeFormat, vm.StartTime))
}
