package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/mod/semver"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/log"
)

// VERSION は現在のstarsoleのバージョンを表す
const VERSION = "v0.3.0"

// latestReleaseURL は最新リリースを問い合わせる先
var latestReleaseURL = "https://api.github.com/repos/kakkky/starsole/releases/latest"

// cacheTTL の間は問い合わせずにキャッシュの結果を使う
const cacheTTL = 24 * time.Hour

const fetchTimeout = 3 * time.Second

// PrintVersion は現在のstarsoleのバージョンを表示する
func PrintVersion(w io.Writer) {
	fmt.Fprintln(w, "starsole "+VERSION)
}

type releasesInfoResponse struct {
	LatestVersion string `json:"tag_name"`
}

type latestVersionCache struct {
	LastChecked   time.Time `json:"last_checked"`
	LatestVersion string    `json:"latest_version"`
}

// IsLatestVersion は現在のstarsoleのバージョンが最新かどうかを判定する
// 最新バージョンは一日一回だけ問い合わせ、結果をキャッシュする
func IsLatestVersion(ctx context.Context) (bool, string, error) {
	cache, err := readLatestVersionCache()
	if err != nil {
		return false, "", err
	}
	if cache != nil && time.Since(cache.LastChecked) < cacheTTL {
		log.Debug("latest version from cache:", cache.LatestVersion)
		return !isNewer(cache.LatestVersion), cache.LatestVersion, nil
	}

	latestVersion, err := fetchLatestVersion(ctx)
	if err != nil {
		return false, "", err
	}
	if err := writeLatestVersionCache(latestVersion); err != nil {
		// キャッシュできなくても判定はできる
		log.Warn("failed to write version cache", err)
	}
	return !isNewer(latestVersion), latestVersion, nil
}

// isNewer は与えられたバージョンが現在のバージョンより新しいかを判定する
// semverとして読めないバージョンは新しいとみなさない
func isNewer(v string) bool {
	if !semver.IsValid(v) {
		return false
	}
	return semver.Compare(v, VERSION) > 0
}

func fetchLatestVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
	if err != nil {
		return "", errs.NewInternalError("failed to build release request").Wrap(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := cleanhttp.DefaultClient().Do(req)
	if err != nil {
		return "", errs.NewInternalError("failed to fetch latest release").Wrap(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			errs.HandleError(err)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", errs.NewInternalError(fmt.Sprintf("unexpected status fetching latest release: %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewInternalError("failed to read response body").Wrap(err)
	}
	var releasesInfo releasesInfoResponse
	if err := json.Unmarshal(body, &releasesInfo); err != nil {
		return "", errs.NewInternalError("failed to unmarshal response body").Wrap(err)
	}

	return releasesInfo.LatestVersion, nil
}

// readLatestVersionCache はキャッシュを読み込む。キャッシュがなければnilを返す
func readLatestVersionCache() (*latestVersionCache, error) {
	cacheFilePath, err := getLatestVersionCacheFilePath()
	if err != nil {
		return nil, err
	}
	cacheFile, err := os.ReadFile(cacheFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.NewInternalError("failed to read version cache").Wrap(err)
	}

	var cache latestVersionCache
	if err := json.Unmarshal(cacheFile, &cache); err != nil {
		// 壊れたキャッシュは問い合わせ直す
		log.Warn("ignoring broken version cache", err)
		return nil, nil
	}
	return &cache, nil
}

func writeLatestVersionCache(latestVersion string) error {
	cacheFilePath, err := getLatestVersionCacheFilePath()
	if err != nil {
		return err
	}
	cache := latestVersionCache{
		LastChecked:   time.Now(),
		LatestVersion: latestVersion,
	}
	json, err := json.MarshalIndent(cache, "", "    ")
	if err != nil {
		return errs.NewInternalError("failed to marshal version cache").Wrap(err)
	}
	if err := os.WriteFile(cacheFilePath, json, 0o644); err != nil {
		return errs.NewInternalError("failed to write version cache").Wrap(err)
	}
	return nil
}

// getLatestVersionCacheFilePath はユーザー設定ディレクトリにあるversion.jsonのパスを返す
func getLatestVersionCacheFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errs.NewInternalError("failed to get user config directory").Wrap(err)
	}
	starsoleConfigDir := filepath.Join(configDir, "starsole")
	if err := os.MkdirAll(starsoleConfigDir, 0o755); err != nil {
		return "", errs.NewInternalError("failed to create starsole config directory").Wrap(err)
	}
	return filepath.Join(starsoleConfigDir, "version.json"), nil
}

var noteStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("3")).
	Padding(1, 2)

// PrintNoteLatestVersion は最新バージョンが存在する場合の通知を表示する
func PrintNoteLatestVersion(w io.Writer, latestVersion string) {
	note := lipgloss.JoinVertical(lipgloss.Left,
		"NOTE",
		"",
		fmt.Sprintf("New version available! starsole %s (you have %s)", latestVersion, VERSION),
		"",
		"Please update with:",
		"",
		"  go install github.com/kakkky/starsole/cmd/starsole@latest",
	)
	fmt.Fprintln(w, noteStyle.Render(note))
}
