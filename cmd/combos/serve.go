package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-combos/internal/platform/feed"
	"github.com/vovakirdan/tui-combos/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagFeedAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server and live move feed",
	Long: `Start an SSH server that allows users to connect and play, and
optionally a websocket feed streaming every detected move as JSON.

Each SSH connection gets its own session with a game picker menu.
Scores and the move log are shared by every user of the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.combos/host_key

Examples:
  combos serve                           # SSH on :23234
  combos serve --ssh :2222               # SSH on port 2222
  combos serve --feed :8080              # also stream moves on ws://host:8080/feed
  combos serve --ssh "" --feed :8080     # feed only

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port, empty to disable)")
	serveCmd.Flags().StringVar(&flagFeedAddr, "feed", "", "Websocket feed address (host:port, empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagSSHAddr == "" && flagFeedAddr == "" {
		exitf("nothing to serve: set --ssh or --feed")
	}

	lo, err := loadLoadout()
	if err != nil {
		exitf("%v", err)
	}

	logger := newLogger("combos-serve", false)
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sess := tui.Session{Store: store, Logger: logger.Logger, Loadout: lo}

	var servers []func(context.Context) error

	if flagFeedAddr != "" {
		hub := feed.NewHub(logger.Logger)
		sess.Feed = hub
		addr := flagFeedAddr
		servers = append(servers, func(ctx context.Context) error {
			return hub.ListenAndServe(ctx, addr)
		})
		fmt.Printf("Streaming moves on ws://%s%s\n", addr, feed.Path)
	}

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.TickRate = flagFPS

		server, err := tui.NewSSHServer(cfg, sess)
		if err != nil {
			exitf("creating server: %v", err)
		}
		servers = append(servers, server.ListenAndServe)
		fmt.Printf("Starting SSH server on %s\n", cfg.Address)
	}
	fmt.Println("Press Ctrl+C to stop")

	// The first server to fail stops the others.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, len(servers))
	for _, serve := range servers {
		go func() {
			errc <- serve(ctx)
		}()
	}

	var firstErr error
	for range servers {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	if firstErr != nil {
		logger.Error("server stopped", "error", firstErr)
		os.Exit(1)
	}
}
