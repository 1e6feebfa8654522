package version

// Version is set during build via ldflags:
//
//	go build -ldflags "-X apilog-admin/internal/version.Version=v1.2.0"
var Version = "dev"
