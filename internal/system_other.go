//go:build !unix && !windows

package internal

// platformVersion is the operating system version shown in the banner. It is
// always empty on this platform.
var platformVersion string

func initPV() {}
