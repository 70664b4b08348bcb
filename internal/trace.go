package internal

import "github.com/tliron/commonlog"

// tracef logs an evaluation event at debug level. Nothing is formatted unless
// the VM's logger accepts debug messages.
func (vm *VM) tracef(format string, args ...interface{}) {
	if vm.Log == nil || !vm.Log.AllowLevel(commonlog.Debug) {
		return
	}
	vm.Log.Debugf(format, args...)
}

// DisableTrace replaces the VM's logger with one that drops everything.
func (vm *VM) DisableTrace() {
	vm.Log = commonlog.MOCK_LOGGER
}
