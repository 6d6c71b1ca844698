package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazey/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the maze viewer SSH server",
	Long: `Start an SSH server that shows the interactive maze viewer to every
connection. Mazes are sized to the client terminal. Runs are recorded in
the server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from the config, generating it if missing

Examples:
  mazey serve                           # Listen on :2323
  mazey serve --ssh :2222               # Listen on port 2222
  mazey serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	sc := tui.SSHServerConfigFrom(cfg)
	if flagSSHAddr != "" {
		sc.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sc.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sc.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(sc, logger.WithPrefix("mazey-ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
