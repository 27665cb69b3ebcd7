package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/log"
)

// editors は設定できる行エディタ
var editors = []string{"prompt", "liner"}

// Config はstarsoleの設定
type Config struct {
	Prompt       string
	BlockPrompt  string
	Editor       string
	HistoryFile  string
	HistorySize  int
	ModulePath   []string
	WatchModules bool
	CheckUpdate  bool
	DebugLog     string
}

// fileConfig は設定ファイルの内容。書かれていない項目はnilのまま残る
type fileConfig struct {
	Prompt       *string   `hcl:"prompt,optional"`
	BlockPrompt  *string   `hcl:"block_prompt,optional"`
	Editor       *string   `hcl:"editor,optional"`
	HistoryFile  *string   `hcl:"history_file,optional"`
	HistorySize  *int      `hcl:"history_size,optional"`
	ModulePath   *[]string `hcl:"module_path,optional"`
	WatchModules *bool     `hcl:"watch_modules,optional"`
	CheckUpdate  *bool     `hcl:"check_update,optional"`
	DebugLog     *string   `hcl:"debug_log,optional"`
}

// Default は設定ファイルがない場合の設定を返す
func Default() *Config {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".starsole_history")
	}
	return &Config{
		Prompt:       ">>> ",
		BlockPrompt:  "  > ",
		Editor:       "prompt",
		HistoryFile:  historyFile,
		HistorySize:  1000,
		ModulePath:   []string{"."},
		WatchModules: true,
		CheckUpdate:  true,
	}
}

// DefaultPath は設定ファイルの既定の場所を返す
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errs.NewInternalError("failed to get user config directory").Wrap(err)
	}
	return filepath.Join(configDir, "starsole", "config.hcl"), nil
}

// Load は設定ファイルを読み込み、既定値に上書きする
// ファイルが存在しなければ既定値を返す
func Load(path string) (*Config, error) {
	cfg := Default()
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("config file not found, using defaults:", path)
		return cfg, nil
	}
	if err != nil {
		return nil, errs.NewInternalError("failed to read config file").Wrap(err)
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, errs.NewBadInputError("failed to parse config file").Wrap(diags)
	}
	var fc fileConfig
	if diags := gohcl.DecodeBody(f.Body, newEvalContext(), &fc); diags.HasErrors() {
		return nil, errs.NewBadInputError("failed to decode config file").Wrap(diags)
	}
	fc.applyTo(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errs.NewBadInputError(fmt.Sprintf("invalid config file %s", path)).Wrap(err)
	}
	log.Debug("config loaded:", path)
	return cfg, nil
}

// Validate は設定値を検証し、すべての誤りをまとめて返す
func (c *Config) Validate() error {
	var result error
	if c.Prompt == "" {
		result = multierror.Append(result, errors.New("prompt must not be empty"))
	}
	if c.BlockPrompt == "" {
		result = multierror.Append(result, errors.New("block_prompt must not be empty"))
	}
	for name, p := range map[string]string{"prompt": c.Prompt, "block_prompt": c.BlockPrompt} {
		if strings.ContainsFunc(p, unicode.IsControl) {
			result = multierror.Append(result, fmt.Errorf("%s must not contain control characters", name))
		}
	}
	if !slices.Contains(editors, c.Editor) {
		result = multierror.Append(result, fmt.Errorf("editor must be one of %s, got %q", strings.Join(editors, ", "), c.Editor))
	}
	if c.HistorySize < 0 {
		result = multierror.Append(result, fmt.Errorf("history_size must not be negative, got %d", c.HistorySize))
	}
	for i, dir := range c.ModulePath {
		if dir == "" {
			result = multierror.Append(result, fmt.Errorf("module_path[%d] must not be empty", i))
		}
	}
	return result
}

func (fc *fileConfig) applyTo(cfg *Config) {
	if fc.Prompt != nil {
		cfg.Prompt = *fc.Prompt
	}
	if fc.BlockPrompt != nil {
		cfg.BlockPrompt = *fc.BlockPrompt
	}
	if fc.Editor != nil {
		cfg.Editor = *fc.Editor
	}
	if fc.HistoryFile != nil {
		cfg.HistoryFile = *fc.HistoryFile
	}
	if fc.HistorySize != nil {
		cfg.HistorySize = *fc.HistorySize
	}
	if fc.ModulePath != nil {
		cfg.ModulePath = *fc.ModulePath
	}
	if fc.WatchModules != nil {
		cfg.WatchModules = *fc.WatchModules
	}
	if fc.CheckUpdate != nil {
		cfg.CheckUpdate = *fc.CheckUpdate
	}
	if fc.DebugLog != nil {
		cfg.DebugLog = *fc.DebugLog
	}
}

// newEvalContext は設定ファイルから env.NAME で環境変数を参照できるようにする
func newEvalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
