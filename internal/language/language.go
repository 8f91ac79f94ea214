// Package language は翻訳先言語のレジストリを提供する。
//
// レジストリはプロセス起動時に固定される読み取り専用のマッピングで、
// 公開APIの/languagesと翻訳リクエストの言語コード検証の両方で使用される。
package language

// displayNames は言語コードから英語表記の表示名へのマッピング。
// 既存クライアントとの互換性のため、コードの集合と綴りは変更しないこと。
var displayNames = map[string]string{
	"spanish":    "Spanish",
	"french":     "French",
	"german":     "German",
	"italian":    "Italian",
	"portuguese": "Portuguese",
	"czech":      "Czech",
}

// List は利用可能な言語コードと表示名のマッピングを返す。
// 返り値はコピーであり、呼び出し側が変更してもレジストリには影響しない。
func List() map[string]string {
	languages := make(map[string]string, len(displayNames))
	for code, name := range displayNames {
		languages[code] = name
	}
	return languages
}

// DisplayName は言語コードに対応する表示名を返す。
// レジストリに存在しないコードの場合はok=falseを返す。
func DisplayName(code string) (string, bool) {
	name, ok := displayNames[code]
	return name, ok
}
