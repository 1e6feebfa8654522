package service

// InstallWarning reports an installed service whose optional setup failed
type InstallWarning struct {
	Err error
}

func (w *InstallWarning) Error() string {
	return "service installed with warnings: " + w.Err.Error()
}

func (w *InstallWarning) Unwrap() error {
	return w.Err
}
