package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/kakkky/starsole/completer"
	"github.com/kakkky/starsole/config"
	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/executor"
	"github.com/kakkky/starsole/log"
	"github.com/kakkky/starsole/registry"
	"github.com/kakkky/starsole/repl"
	"github.com/kakkky/starsole/version"
)

var (
	configPath    string
	editor        string
	noUpdateCheck bool
	debug         bool
	noRepl        bool
)

var rootCmd = &cobra.Command{
	Use:   "starsole [files...]",
	Short: "An interactive Starlark shell with tab completion",
	Long: `starsole is an interactive shell for Starlark.

Files given as arguments are executed in the session before the prompt starts,
so their globals are available from the first line.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of starsole",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.PrintVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to the config file (default: $XDG_CONFIG_HOME/starsole/config.hcl)")
	rootCmd.Flags().StringVar(&editor, "editor", "", "Line editor to use (prompt, liner)")
	rootCmd.Flags().BoolVar(&noUpdateCheck, "no-update-check", false, "Skip checking for a newer release")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Write debug logs to stderr")
	rootCmd.Flags().BoolVar(&noRepl, "no-repl", false, "Execute the given files and exit without starting the prompt")

	rootCmd.Version = version.VERSION
	rootCmd.SetVersionTemplate(fmt.Sprintf("starsole %s\n", version.VERSION))
	rootCmd.AddCommand(versionCmd)
}

// Execute はルートコマンドを実行する
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		errs.HandleError(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, files []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if debug {
		log.SetOutput(os.Stderr)
	} else if cfg.DebugLog != "" {
		closeLog, err := log.OpenFile(cfg.DebugLog)
		if err != nil {
			return errs.NewInternalError("failed to open debug log").Wrap(err)
		}
		defer closeLog()
	}

	registry := registry.NewRegistry()
	executor, err := executor.NewExecutor(registry, executor.Options{
		ModulePath: cfg.ModulePath,
		Watch:      cfg.WatchModules && !noRepl,
	})
	if err != nil {
		return err
	}
	defer executor.Close()

	// 引数のファイルはすべて実行し、失敗はまとめて報告する
	var startupErr error
	for _, file := range files {
		if err := executor.ExecFile(ctx, file); err != nil {
			startupErr = multierror.Append(startupErr, fmt.Errorf("%s: %w", file, err))
		}
	}
	if noRepl {
		return startupErr
	}
	if startupErr != nil {
		errs.HandleError(startupErr)
	}
	if executor.ExitRequested() {
		return nil
	}

	repl.PrintBanner(os.Stdout, version.VERSION)
	if cfg.CheckUpdate {
		noteLatestVersion(ctx)
	}

	// 補完は行エディタがrawモードの間に走るので、診断も改行を変換して書き出す
	completer := completer.NewCompleter(executor, repl.NewTTYWriter(os.Stderr))
	r, err := repl.NewRepl(completer, executor, repl.Options{
		Prompt:      cfg.Prompt,
		BlockPrompt: cfg.BlockPrompt,
		Editor:      cfg.Editor,
		HistoryFile: cfg.HistoryFile,
		HistorySize: cfg.HistorySize,
	})
	if err != nil {
		return err
	}
	return r.Run(ctx)
}

// loadConfig は設定ファイルを読み込み、フラグで上書きする
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if editor != "" {
		cfg.Editor = editor
	}
	if noUpdateCheck {
		cfg.CheckUpdate = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, errs.NewBadInputError("invalid flags").Wrap(err)
	}
	return cfg, nil
}

// noteLatestVersion は新しいリリースがあれば通知する
// 問い合わせに失敗しても起動は続ける
func noteLatestVersion(ctx context.Context) {
	isLatest, latestVersion, err := version.IsLatestVersion(ctx)
	if err != nil {
		log.Warn("failed to check latest version", err)
		return
	}
	if !isLatest {
		version.PrintNoteLatestVersion(os.Stdout, latestVersion)
	}
}
