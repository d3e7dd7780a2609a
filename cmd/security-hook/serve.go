package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fnzv/security-hook/internal/audit"
	"github.com/fnzv/security-hook/internal/daemon"
	"github.com/fnzv/security-hook/internal/decision"
	"github.com/fnzv/security-hook/internal/hookio"
)

func serveCmd() *cobra.Command {
	var socketPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as a long-lived daemon, keeping a hot-reloaded policy warm across connections",
		Long: "serve keeps a compiled policy in memory and recompiles it only when the backing " +
			"TOML config files change, instead of reparsing on every request. It accepts one JSON " +
			"request per connection over a unix socket and writes back the same decision a single " +
			"'check' invocation would produce; no state is shared across connections.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(socketPath)
		},
	}
	cmd.Flags().StringVar(&socketPath, "socket", "/tmp/security-hook.sock", "unix socket path to listen on")
	return cmd
}

func runServe(socketPath string) error {
	cwd := resolveCwd("")

	watcher, err := daemon.NewWatcher(cwd)
	if err != nil {
		return fmt.Errorf("start policy watcher: %w", err)
	}
	defer watcher.Close()

	_ = os.Remove(socketPath)
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	defer listener.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("security-hook: serve: shutting down")
		listener.Close()
	}()

	log.Printf("security-hook: serve: listening on %s", socketPath)

	for {
		conn, err := listener.Accept()
		if err != nil {
			return nil
		}
		go handleConn(conn, watcher)
	}
}

func handleConn(conn net.Conn, watcher *daemon.Watcher) {
	defer conn.Close()

	data, err := io.ReadAll(conn)
	if err != nil {
		log.Printf("security-hook: serve: read request: %v", err)
		return
	}

	inv, err := hookio.Parse(data)
	if err != nil {
		log.Printf("security-hook: serve: malformed request, failing open: %v", err)
		fmt.Fprintln(conn)
		return
	}

	cfg := watcher.Policy()
	verdict := hookio.Evaluate(inv, cfg)

	if cfg.Raw.Audit.Enabled {
		sessionID := inv.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		summarySource, _ := inv.Command()
		if summarySource == "" {
			summarySource, _ = inv.FilePathOf()
		}
		logger := audit.NewLogger(true, cfg.Raw.Audit.Path)
		logger.Write(audit.NewEntry(time.Now(), sessionID, inv.Tool.String(), verdict, summarySource))
	}

	writeConnResponse(conn, verdict)
}

func writeConnResponse(conn net.Conn, v decision.Verdict) {
	switch v.Kind {
	case decision.Block:
		fmt.Fprintln(conn, decision.FormatBlock(v))
	case decision.Ask:
		out, err := decision.FormatAsk(v)
		if err != nil {
			return
		}
		fmt.Fprintln(conn, out)
	}
}
