//go:build !windows

package service

import "errors"

// ErrUnsupported is returned by the service manager commands off Windows
var ErrUnsupported = errors.New("windows service management is not supported on this platform")

// RunService runs the app in the foreground; there is no service manager here
func RunService(_ Identity, _ bool, app *Application) error {
	return app.Run()
}

func InstallService(Identity, string) error {
	return ErrUnsupported
}

func UninstallService(Identity) error {
	return ErrUnsupported
}

func StartService(Identity) error {
	return ErrUnsupported
}

func StopService(Identity) error {
	return ErrUnsupported
}

// IsWindowsService always returns false on non-Windows platforms
func IsWindowsService() (bool, error) {
	return false, nil
}
