package executor

import (
	"path/filepath"
	"strings"
)

// moduleFileExt はモジュールとして読み込むファイルの拡張子
const moduleFileExt = ".star"

// findModuleFile はモジュール名に一致する .star ファイルを検索パスの先頭から探す
//
// MEMO: モジュール名とファイル名(拡張子を除く)が一致することを前提としている
func findModuleFile(searchPath []string, name string, f filer) (string, bool) {
	for _, dir := range searchPath {
		candidate := filepath.Join(dir, name+moduleFileExt)
		if f.exists(candidate) {
			return absPath(candidate), true
		}
	}
	return "", false
}

// resolveLoadPath はload文に書かれたパスを実ファイルのパスに解決する
// 絶対パスはそのまま使い、相対パスは検索パスの先頭から探す
func resolveLoadPath(searchPath []string, module string, f filer) (string, bool) {
	if filepath.IsAbs(module) {
		return module, f.exists(module)
	}
	for _, dir := range searchPath {
		candidate := filepath.Join(dir, module)
		if f.exists(candidate) {
			return absPath(candidate), true
		}
	}
	return "", false
}

// moduleNameFromPath はファイルパスからモジュール名を作る
func moduleNameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), moduleFileExt)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
