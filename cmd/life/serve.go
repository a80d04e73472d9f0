package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	serveFlags      sessionFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Life SSH server",
	Long: `Start an SSH server that lets users connect and run boards.

Each SSH connection gets its own session with a mode picker menu.
Saved boards and history are stored per-server (all users share them).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.life/host_key

Examples:
  life serve                           # Listen on :23235 with auto-generated key
  life serve --ssh :2222               # Listen on port 2222
  life serve --host-key ./my_host_key  # Use specific host key
  life serve --pattern glider-gun      # Start every session with a gun

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveFlags.register(serveCmd)
	serveCmd.Flags().MarkHidden("load") //nolint:errcheck // Flag exists
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "life-ssh")

	if _, err := serveFlags.prepare(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	port := cfg.Address[strings.LastIndex(cfg.Address, ":")+1:]
	fmt.Printf("Starting Life SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
