// Package main provides the CLI entrypoint for dogruyaz.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/dogruyaz/internal/bank"
	"github.com/verte-zerg/dogruyaz/internal/config"
	"github.com/verte-zerg/dogruyaz/internal/game"
	"github.com/verte-zerg/dogruyaz/internal/generator"
	"github.com/verte-zerg/dogruyaz/internal/logging"
	"github.com/verte-zerg/dogruyaz/internal/model"
	"github.com/verte-zerg/dogruyaz/internal/scores"
	"github.com/verte-zerg/dogruyaz/internal/stats"
	"github.com/verte-zerg/dogruyaz/internal/store"
	"github.com/verte-zerg/dogruyaz/internal/tui"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

var (
	storeBackend string
	ephemeral    bool
	logLevel     string

	playCategory  string
	playQuestions int

	scoresCategory string

	resetYes bool
)

// app holds what every command needs once config is resolved.
type app struct {
	cfg    appConfig
	log    *logrus.Logger
	kv     store.KV
	scores *scores.Store
	closer io.Closer
}

// appConfig is the effective configuration after flags, file and env are merged.
type appConfig struct {
	Game      model.GameConfig
	Store     model.StoreConfig
	LogLevel  string
	LogFormat string
	LogPath   string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dogruyaz",
		Short:         "Doğru bilinen yanlışlar: terminal quiz",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, "", false)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&storeBackend, "store", store.BackendSQLite, "score storage backend (sqlite, redis, memory)")
	flags.BoolVar(&ephemeral, "ephemeral", false, "keep scores in memory for this run only")
	flags.StringVar(&logLevel, "log-level", defaultLogLevel, "diagnostic log level")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, playCategory, true)
		},
	}
	cmd.Flags().StringVar(&playCategory, "category", "", "category key (spelling, vocabulary, general, history)")
	cmd.Flags().IntVar(&playQuestions, "questions", game.DefaultQuestions, "questions per game")
	return cmd
}

// runTUI opens the quiz UI. With play set it starts a game in category, or
// in the configured category; otherwise it opens at Home.
func runTUI(cmd *cobra.Command, category string, play bool) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	start, err := startCategory(category, a.cfg.Game, play)
	if err != nil {
		return err
	}

	b, err := loadBank(a.cfg.Game.BankPath)
	if err != nil {
		return err
	}

	m := tui.NewModel(tui.Options{
		Bank:          b,
		Picker:        generator.New(),
		Scores:        a.scores,
		Questions:     a.cfg.Game.Questions,
		StartCategory: start,
		Log:           a.log,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// startCategory picks the category a game opens in. Home is shown unless play
// is set; then the flag wins over game.category.
func startCategory(flag string, cfg model.GameConfig, play bool) (model.Category, error) {
	if !play {
		return "", nil
	}
	if flag == "" {
		return cfg.Category, nil
	}
	cat, ok := model.ParseCategory(flag)
	if !ok {
		return "", fmt.Errorf("--category: unknown category %q", flag)
	}
	return cat, nil
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Print the score history",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().StringVar(&scoresCategory, "category", "", "only show this category")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	var only model.Category
	if scoresCategory != "" {
		cat, ok := model.ParseCategory(scoresCategory)
		if !ok {
			return fmt.Errorf("--category: unknown category %q", scoresCategory)
		}
		only = cat
	}
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	report := stats.BuildReport(cmd.Context(), a.scores, only)
	if err := stats.RenderReport(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all scores",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "do not ask for confirmation")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	if !resetYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to reset without --yes when stdin is not a terminal")
		}
		ok, err := confirm(os.Stdin, cmd.ErrOrStderr(), "Tüm skorlar silinecek. Emin misiniz? [e/H] ")
		if err != nil {
			return err
		}
		if !ok {
			logErrln("İptal edildi.")
			return nil
		}
	}
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	a.scores.Reset(cmd.Context())
	logErrln("Skorlar sıfırlandı.")
	return nil
}

// confirm asks a yes/no question and accepts Turkish or English yes.
func confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "e", "evet", "y", "yes":
		return true, nil
	}
	return false, nil
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE:  runCategoriesCmd,
	}
}

func runCategoriesCmd(cmd *cobra.Command, _ []string) error {
	for _, cat := range model.Categories() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", cat, cat.Title()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// setup resolves config, opens the log and the score store.
func setup(cmd *cobra.Command) (*app, error) {
	if err := config.LoadEnvFiles(".env", config.DefaultEnvPath()); err != nil {
		logErrf("%v\n", err)
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(&fileCfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	cfg := resolveConfig(cmd, fileCfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	kv, err := store.Open(ctx, cfg.Store)
	if err != nil {
		closeQuietly(closer, "log")
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	logger.WithField("backend", cfg.Store.Backend).Debug("store opened")

	return &app{
		cfg:    cfg,
		log:    logger,
		kv:     kv,
		scores: scores.New(kv, logger),
		closer: closer,
	}, nil
}

func (a *app) close() {
	closeQuietly(a.kv, "store")
	closeQuietly(a.closer, "log")
}

func closeQuietly(c io.Closer, what string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logErrf("failed to close %s: %v\n", what, err)
	}
}

// resolveConfig merges defaults, the config file and flags. Flags win.
func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig) appConfig {
	cfg := appConfig{
		Game: model.GameConfig{Questions: game.DefaultQuestions},
		Store: model.StoreConfig{
			Backend:     store.BackendSQLite,
			Path:        config.DefaultDBPath(),
			RedisAddr:   "localhost:6379",
			RedisPrefix: store.DefaultRedisPrefix,
		},
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		LogPath:   config.DefaultLogPath(),
	}

	var category string
	applyStringConfig(nil, "", &category, fileCfg.Game.Category)
	cfg.Game.Category = model.Category(category)
	applyStringConfig(nil, "", &cfg.Game.BankPath, fileCfg.Game.Bank)
	applyStringConfig(nil, "", &cfg.Store.Path, fileCfg.Store.Path)
	applyStringConfig(nil, "", &cfg.Store.RedisAddr, fileCfg.Store.RedisAddr)
	applyStringConfig(nil, "", &cfg.Store.RedisPrefix, fileCfg.Store.RedisPrefix)
	applyIntConfig(nil, "", &cfg.Store.RedisDB, fileCfg.Store.RedisDB)
	applyStringConfig(nil, "", &cfg.LogFormat, fileCfg.Log.Format)
	applyStringConfig(nil, "", &cfg.LogPath, fileCfg.Log.Path)

	cfg.Game.Questions = playQuestions
	applyIntConfig(cmd, "questions", &cfg.Game.Questions, fileCfg.Game.Questions)
	cfg.Store.Backend = storeBackend
	applyStringConfig(cmd, "store", &cfg.Store.Backend, fileCfg.Store.Backend)
	cfg.LogLevel = logLevel
	applyStringConfig(cmd, "log-level", &cfg.LogLevel, fileCfg.Log.Level)

	if ephemeral {
		cfg.Store.Backend = store.BackendMemory
	}
	return cfg
}

// applyStringConfig copies value into target unless the named flag was set.
// A nil cmd applies the value unconditionally.
func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func validateConfig(cfg appConfig) error {
	if cfg.Game.Questions <= 0 {
		return fmt.Errorf("--questions must be > 0")
	}
	if cfg.Game.Category != "" && !cfg.Game.Category.Known() {
		return fmt.Errorf("game.category: unknown category %q", cfg.Game.Category)
	}
	switch cfg.Store.Backend {
	case store.BackendSQLite:
		if cfg.Store.Path == "" {
			return fmt.Errorf("store.path must not be empty")
		}
	case store.BackendRedis:
		if cfg.Store.RedisAddr == "" {
			return fmt.Errorf("store.redis-addr must not be empty")
		}
		if cfg.Store.RedisDB < 0 {
			return fmt.Errorf("store.redis-db must be >= 0")
		}
	case store.BackendMemory:
	default:
		return fmt.Errorf("--store must be one of %s, %s, %s", store.BackendSQLite, store.BackendRedis, store.BackendMemory)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	return nil
}

func loadBank(path string) (bank.Bank, error) {
	if path == "" {
		b, err := bank.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in questions: %w", err)
		}
		return b, nil
	}
	b, err := bank.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank %s: %w", path, err)
	}
	return b, nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# dogruyaz configuration
# Uncomment a value to enable it. CLI flags override config values,
# config values override DOGRUYAZ_* environment variables.

[game]
# category = "spelling"   # Open this category directly (spelling, vocabulary, general, history)
# questions = %d          # Questions per game
# bank = ""               # Path to a JSON or YAML question bank

[store]
# backend = %q        # sqlite, redis or memory
# path = %q
# redis-addr = "localhost:6379"
# redis-db = 0
# redis-prefix = %q

[log]
# level = %q
# format = %q          # text or json
# path = %q
`,
		game.DefaultQuestions,
		store.BackendSQLite,
		config.DefaultDBPath(),
		store.DefaultRedisPrefix,
		defaultLogLevel,
		defaultLogFormat,
		config.DefaultLogPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
