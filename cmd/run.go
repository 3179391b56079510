package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/ksa/internal/app"
	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/logger"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/session"
	"github.com/abhisek/ksa/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// The TUI owns the terminal, so logs only go to a file beside the database.
	log, err := logger.NewWithOptions(logger.Options{
		Mode: "prod",
		File: filepath.Join(filepath.Dir(dbPath), "ksa.log"),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	eventRepo := st.EventRepo()
	offline, _ := cmd.Flags().GetBool("offline")
	provider, err := buildProvider(ctx, offline, llm.Options{EventRepo: eventRepo, Logger: log})
	if err != nil {
		return err
	}

	cfg := assessment.DefaultConfig()
	manager := session.NewManager(session.Deps{
		Generator: assessment.NewGenerator(provider, cfg),
		Evaluator: assessment.NewEvaluator(provider, cfg, log),
		Events:    eventRepo,
		Logger:    log,
	})

	sess := manager.Create(ctx, userFromFlags(cmd))
	defer manager.Delete(context.WithoutCancel(ctx), sess.ID())

	skipWelcome, _ := cmd.Flags().GetBool("no-welcome")
	return app.Run(app.Options{
		Session:     sess,
		EventRepo:   eventRepo,
		Logger:      log,
		SkipWelcome: skipWelcome,
	})
}

// buildProvider resolves the AI provider from the environment. Without a
// configured provider, or with offline set, the built-in sample questions
// are served instead.
func buildProvider(ctx context.Context, offline bool, opts llm.Options) (llm.Provider, error) {
	opts.Mock = assessment.NewDemoProvider()
	if offline {
		return llm.NewProvider(ctx, llm.Config{Provider: llm.ProviderMock}, opts)
	}

	provider, err := llm.NewProviderFromEnv(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using built-in sample questions.")
		return llm.NewProvider(ctx, llm.Config{Provider: llm.ProviderMock}, opts)
	}
	return provider, nil
}

func userFromFlags(cmd *cobra.Command) progress.UserProgress {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		return progress.Demo()
	}
	sectors, _ := cmd.Flags().GetStringSlice("sectors")
	return progress.New("", name, progress.RoleEndUser, sectors...)
}
