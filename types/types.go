package types

// Value はランタイムの値を表す。
// 補完やREPLは値の中身に立ち入らず、ホストの値モデルを通してのみ扱う。
type Value any

// ModuleName はロード済みモジュールの名前を表す。
type ModuleName string

// MemberName はモジュールやオブジェクトが持つ属性名を表す。
type MemberName string

// SourceLabel は実行するソースの出どころを表すラベル。
// エラーのバックトレースにファイル名として表示される。
type SourceLabel string

// StdinLabel はREPLから入力されたソースのラベル
const StdinLabel SourceLabel = "<stdin>"
