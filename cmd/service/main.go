package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"apilog-admin/internal/service"
	"apilog-admin/internal/version"
)

func main() {
	// Define command line flags
	install := flag.Bool("install", false, "Install Windows service")
	uninstall := flag.Bool("uninstall", false, "Uninstall Windows service")
	start := flag.Bool("start", false, "Start the service")
	stop := flag.Bool("stop", false, "Stop the service")
	debug := flag.Bool("debug", false, "Run in debug/console mode")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	exePath, err := os.Executable()
	if err != nil {
		log.Fatal(err)
	}

	// Change to executable directory for config loading
	if err := os.Chdir(filepath.Dir(exePath)); err != nil {
		log.Printf("Warning: could not change to executable directory: %v", err)
	}

	id, err := service.LoadIdentity()
	if err != nil {
		log.Printf("Warning: using default service name %q: %v", id.Name, err)
	}

	if *showVersion {
		fmt.Printf("%s\n", id.DisplayName)
		fmt.Printf("Version: %s\n", version.Version)
		os.Exit(0)
	}

	switch {
	case *install:
		err := service.InstallService(id, exePath)
		var warning *service.InstallWarning
		switch {
		case errors.As(err, &warning):
			log.Printf("Warning: %v", warning)
		case err != nil:
			log.Fatalf("Failed to install service: %v", err)
		}
		fmt.Printf("Service %s installed successfully\n", id.Name)

		if err := service.StartService(id); err != nil {
			log.Printf("Warning: Failed to start service: %v", err)
			fmt.Println("You may need to start the service manually")
		} else {
			fmt.Println("Service started")
		}

	case *uninstall:
		// Try to stop service first
		_ = service.StopService(id)

		if err := service.UninstallService(id); err != nil {
			log.Fatalf("Failed to uninstall service: %v", err)
		}
		fmt.Println("Service uninstalled successfully")

	case *start:
		if err := service.StartService(id); err != nil {
			log.Fatalf("Failed to start service: %v", err)
		}
		fmt.Println("Service started")

	case *stop:
		if err := service.StopService(id); err != nil {
			log.Fatalf("Failed to stop service: %v", err)
		}
		fmt.Println("Service stopped")

	default:
		isService, err := service.IsWindowsService()
		if err != nil {
			log.Printf("Warning: could not determine if running as service: %v", err)
		}

		app := service.NewApplication()

		switch {
		case isService:
			err = service.RunService(id, false, app)
		case *debug:
			err = service.RunService(id, true, app)
		default:
			fmt.Printf("%s %s\n", id.DisplayName, version.Version)
			fmt.Println("Running in console mode. Press Ctrl+C to stop.")
			fmt.Println()
			fmt.Println("Available commands:")
			fmt.Println("  -install    Install as Windows service")
			fmt.Println("  -uninstall  Uninstall Windows service")
			fmt.Println("  -start      Start the service")
			fmt.Println("  -stop       Stop the service")
			fmt.Println("  -debug      Run in debug mode")
			fmt.Println("  -version    Show version")
			fmt.Println()

			err = app.Run()
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}
