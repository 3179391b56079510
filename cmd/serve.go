package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/logger"
	"github.com/abhisek/ksa/internal/metrics"
	"github.com/abhisek/ksa/internal/server"
	"github.com/abhisek/ksa/internal/session"
	"github.com/abhisek/ksa/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment API over HTTP",
	Long: `Run the JSON API for browser clients.

Configuration comes from KSA_* environment variables (KSA_HTTP_ADDR,
KSA_LOG_MODE, KSA_LOG_FILE, KSA_CORS_ORIGINS, KSA_START_RATE,
KSA_DEFAULT_SECTORS, KSA_SESSION_IDLE_TIMEOUT, KSA_SHUTDOWN_TIMEOUT).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides KSA_HTTP_ADDR)")
	serveCmd.Flags().Bool("offline", false, "Use built-in sample questions instead of an AI provider")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	log, err := logger.NewWithOptions(logger.Options{Mode: cfg.LogMode, File: cfg.LogFile, Console: true})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	if cfg.LogMode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	m := metrics.New()
	eventRepo := st.EventRepo()
	offline, _ := cmd.Flags().GetBool("offline")
	provider, err := buildProvider(ctx, offline, llm.Options{EventRepo: eventRepo, Observer: m, Logger: log})
	if err != nil {
		return err
	}
	log.Info("llm provider ready", "model", provider.ModelID(), "db", dbPath)

	acfg := assessment.DefaultConfig()
	manager := session.NewManager(session.Deps{
		Generator: assessment.NewGenerator(provider, acfg),
		Evaluator: assessment.NewEvaluator(provider, acfg, log),
		Events:    eventRepo,
		Observer:  m,
		Logger:    log,
	})

	return server.New(cfg, manager, m, log).Run(ctx)
}
