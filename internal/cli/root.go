package cli

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/wjn/LanguageFlashCards/internal/config"
	"github.com/wjn/LanguageFlashCards/internal/console"
	"github.com/wjn/LanguageFlashCards/internal/repository"
	"github.com/wjn/LanguageFlashCards/internal/service"
	"github.com/wjn/LanguageFlashCards/internal/storage/db"
	"github.com/wjn/LanguageFlashCards/internal/storage/disk"
	"go.uber.org/zap"
)

var (
	configFile   string
	wordBankPath string
	verbose      bool
	rootCmd      *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "flashcards",
		Short: "Vocabulary flash cards backed by a CSV word bank",
		Long: `flashcards quizzes you on the entries of a word bank file and keeps
per-entry statistics (last seen, times seen, times missed) in the same file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default configs/$CONFIG_NAME.yaml)")
	rootCmd.PersistentFlags().StringVarP(&wordBankPath, "wordbank", "w", "", "Word bank CSV file, overrides the config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every entry while loading the word bank")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// setupLogger builds the zap logger for env. debug lowers the level so the
// per-entry word bank logging shows up in production too.
func setupLogger(env string, debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadConfig reads the config and applies the global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Init(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if wordBankPath != "" {
		cfg.WordBank.Path = wordBankPath
	}
	if verbose {
		cfg.WordBank.Verbose = true
	}

	return cfg, nil
}

type app struct {
	cfg      *config.Config
	log      *zap.Logger
	db       *sqlx.DB
	services *service.Service
	console  *console.Console
}

// newApp loads the config, the word bank and, when enabled, the quiz
// history. The caller must call close.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := setupLogger(cfg.Env, cfg.WordBank.Verbose)

	bank, err := repository.LoadWordBank(disk.New(), cfg.WordBank.Path, cfg.WordBank.Verbose, logger)
	if err != nil {
		logger.Error("failed to load word bank", zap.String("path", cfg.WordBank.Path), zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		log:     logger,
		console: console.New(cmd.InOrStdin(), cmd.OutOrStdout()),
	}

	var history service.QuizRI
	if cfg.History.Enabled {
		a.db, err = db.InitDB(cfg.History.Path)
		if err != nil {
			logger.Warn("quiz history unavailable", zap.String("path", cfg.History.Path), zap.Error(err))
		} else {
			history = repository.NewQuizRepository(a.db)
		}
	}

	a.services = service.InitServices(bank, history, logger)

	return a, nil
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("failed to close history db", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
