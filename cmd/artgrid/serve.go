package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/artgrid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the artgrid SSH server",
	Long: `Start an SSH server that shows the live grid to every connecting user.

Each SSH connection gets its own viewer. Settings are remembered per SSH
user name; exporting is disabled for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.artgrid/host_key

Examples:
  artgrid serve                           # Listen on :23235 with auto-generated key
  artgrid serve --ssh :2222               # Listen on port 2222
  artgrid serve --host-key ./my_host_key  # Use specific host key
  artgrid serve --palette Neon --grid 3   # Defaults for first-time users

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, s, err := loadSettings(cmd)
	if err != nil {
		fatal("loading settings", err)
	}
	cfg.Settings = s
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleMinutes = flagIdleTimeout
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	serverCfg := tui.NewSSHServerConfig(cfg)
	server, err := tui.NewSSHServer(serverCfg, store, logger.WithPrefix("artgrid-ssh"))
	if err != nil {
		fatal("creating server", err)
	}

	fmt.Printf("Starting artgrid SSH server on %s (idle timeout %s)\n", serverCfg.Address, serverCfg.IdleTimeout.Round(time.Minute))
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(serverCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
