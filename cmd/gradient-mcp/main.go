package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gradient-tools/internal/config"
	"github.com/ironsheep/gradient-tools/internal/logger"
	"github.com/ironsheep/gradient-tools/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("gradient-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("gradient-mcp - MCP server for gradient stop detection")
			fmt.Println()
			fmt.Println("Usage: gradient-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=json    Log as JSON\n", config.EnvLogFormat)
			fmt.Printf("  %s=<n>     Default tolerance for gradient tools\n", config.EnvTolerance)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Logging goes to stderr (stdout is for MCP protocol)
	cfg := config.LoadFromEnv()
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	logger.SetOutput(os.Stderr)

	logger.WithFields(logrus.Fields{
		"version":   Version,
		"built":     BuildTime,
		"commit":    GitCommit,
		"tolerance": cfg.Tolerance,
	}).Debug("gradient MCP server starting")

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		logger.WithError(err).Fatal("server error")
	}
}
