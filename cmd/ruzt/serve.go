package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"
	"sync"
	"time"

	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/game"
	"halls-of-ruzt/internal/render"
	internalssh "halls-of-ruzt/internal/ssh"
	"halls-of-ruzt/internal/storage"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"
)

var (
	flagAddr    string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve single-player runs over SSH",
	Long: `Start an SSH server. Every connection plays its own run; finished
runs are recorded in the run history.

Connect with:
  ssh -t -p 2222 <host>

Examples:
  ruzt serve
  ruzt serve --addr :2323 --key ./ruzt_host_key`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":2222", "Listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "key", "ruzt_host_key", "PEM host key (generated if absent)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open save database: %w", err)
	}
	defer store.Close()

	signer, err := loadOrCreateHostKey(flagHostKey, logger)
	if err != nil {
		return err
	}
	srv := &gossh.Server{
		Addr:        flagAddr,
		Handler:     func(s gossh.Session) { handleSession(s, cfg, store, logger) },
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}
	logger.Info("listening", "addr", flagAddr)
	return srv.ListenAndServe()
}

// termMu serializes TERM changes around screen creation.
var termMu sync.Mutex

// handleSession runs one run for the connection and blocks until it ends.
func handleSession(s gossh.Session, cfg config.Config, store *storage.Store, logger *log.Logger) {
	pty, winCh, ok := s.Pty()
	if !ok {
		fmt.Fprintln(s, "Halls of Ruzt needs a terminal. Connect with: ssh -t -p 2222 <host>")
		return
	}
	sessLog := logger.With("user", s.User(), "remote", s.RemoteAddr().String())

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", internalssh.SessionTerm(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	} else {
		cfg.Seed = time.Now().UnixNano()
	}
	quiet := log.NewWithOptions(os.Stderr, log.Options{Level: log.ErrorLevel, Prefix: "ruzt"})
	e, err := game.New(cfg, engineOptions(cfg, quiet, nil)...)
	if err != nil {
		sessLog.Error("start run", "err", err)
		return
	}
	sessLog.Info("session started", "seed", cfg.Seed)
	render.NewSession(e).Play(screen)

	if e.GameOver() {
		if err := recordRun(store, "", e, sessLog); err != nil {
			sessLog.Error("record run", "err", err)
		}
	}
	sessLog.Info("session ended", "depth", e.DungeonLevel, "turns", e.Stats.Log.TurnsPlayed)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *log.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	if block, err := xssh.MarshalPrivateKey(key, "ruzt server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			logger.Warn("could not persist host key", "err", err)
		}
	}
	return signer, nil
}
