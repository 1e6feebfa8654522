//go:build windows

package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/debug"
	"golang.org/x/sys/windows/svc/eventlog"
	"golang.org/x/sys/windows/svc/mgr"

	"apilog-admin/internal/version"
)

const eventID = 1

// Restart after 5s, 10s, then 30s; the failure count resets after a day.
var recoveryActions = []mgr.RecoveryAction{
	{Type: mgr.ServiceRestart, Delay: 5 * time.Second},
	{Type: mgr.ServiceRestart, Delay: 10 * time.Second},
	{Type: mgr.ServiceRestart, Delay: 30 * time.Second},
}

const recoveryResetSeconds = 24 * 60 * 60

// handler bridges service control requests to the Application lifecycle
type handler struct {
	id   Identity
	app  *Application
	elog debug.Log
}

func (h *handler) Execute(_ []string, requests <-chan svc.ChangeRequest, status chan<- svc.Status) (bool, uint32) {
	const accepts = svc.AcceptStop | svc.AcceptShutdown

	status <- svc.Status{State: svc.StartPending}

	runErr := make(chan error, 1)
	go func() { runErr <- h.app.Run() }()

	status <- svc.Status{State: svc.Running, Accepts: accepts}
	h.elog.Info(eventID, fmt.Sprintf("%s %s running", h.id.Name, version.Version))

	for {
		select {
		case req := <-requests:
			switch req.Cmd {
			case svc.Interrogate:
				status <- req.CurrentStatus
			case svc.Stop, svc.Shutdown:
				status <- svc.Status{State: svc.StopPending}
				h.app.Shutdown()
				<-runErr
				h.elog.Info(eventID, fmt.Sprintf("%s stopped", h.id.Name))
				return false, 0
			default:
				h.elog.Warning(eventID, fmt.Sprintf("%s: ignoring control request %d", h.id.Name, req.Cmd))
			}
		case err := <-runErr:
			// the fx graph failed to start or shut itself down
			if err != nil {
				h.elog.Error(eventID, fmt.Sprintf("%s: %v", h.id.Name, err))
				return false, 1
			}
			h.elog.Warning(eventID, fmt.Sprintf("%s exited on its own", h.id.Name))
			return false, 0
		}
	}
}

// RunService hands the Application to the service control manager, or to the
// console debug runner when isDebug is set.
func RunService(id Identity, isDebug bool, app *Application) error {
	var (
		elog debug.Log
		err  error
		run  = svc.Run
	)
	if isDebug {
		elog = debug.New(id.Name)
		run = debug.Run
	} else if elog, err = eventlog.Open(id.Name); err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer elog.Close()

	if err := run(id.Name, &handler{id: id, app: app, elog: elog}); err != nil {
		elog.Error(eventID, fmt.Sprintf("%s failed: %v", id.Name, err))
		return err
	}
	return nil
}

// withService connects to the service manager and opens the named service
func withService(name string, fn func(s *mgr.Service) error) error {
	m, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("connect to service manager: %w", err)
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return fmt.Errorf("service %s not installed: %w", name, err)
	}
	defer s.Close()

	return fn(s)
}

// InstallService registers exePath to start automatically under id. The
// event log source and recovery actions are best effort.
func InstallService(id Identity, exePath string) error {
	m, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("connect to service manager: %w", err)
	}
	defer m.Disconnect()

	if s, err := m.OpenService(id.Name); err == nil {
		s.Close()
		return fmt.Errorf("service %s already exists", id.Name)
	}

	s, err := m.CreateService(id.Name, exePath, mgr.Config{
		DisplayName: id.DisplayName,
		Description: id.Description,
		StartType:   mgr.StartAutomatic,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	var warnings []error
	if err := eventlog.InstallAsEventCreate(id.Name, eventlog.Error|eventlog.Warning|eventlog.Info); err != nil {
		warnings = append(warnings, fmt.Errorf("event log source: %w", err))
	}
	if err := s.SetRecoveryActions(recoveryActions, recoveryResetSeconds); err != nil {
		warnings = append(warnings, fmt.Errorf("recovery actions: %w", err))
	}
	if len(warnings) > 0 {
		return &InstallWarning{Err: errors.Join(warnings...)}
	}
	return nil
}

func UninstallService(id Identity) error {
	return withService(id.Name, func(s *mgr.Service) error {
		_ = eventlog.Remove(id.Name)
		return s.Delete()
	})
}

func StartService(id Identity) error {
	return withService(id.Name, func(s *mgr.Service) error {
		return s.Start()
	})
}

func StopService(id Identity) error {
	return withService(id.Name, func(s *mgr.Service) error {
		_, err := s.Control(svc.Stop)
		return err
	})
}

// IsWindowsService checks if running as Windows service
func IsWindowsService() (bool, error) {
	return svc.IsWindowsService()
}
