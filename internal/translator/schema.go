package translator

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。db/query.sql.go のクエリと同期すること。
const schema = `
CREATE TABLE IF NOT EXISTS translations (
    -- 翻訳リクエストの一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 翻訳先の言語コード
    target_language TEXT NOT NULL,
    -- 原文の単語数（空白区切り）
    original_word_count INTEGER NOT NULL,
    -- 訳文の単語数（空白区切り）
    translated_word_count INTEGER NOT NULL,
    -- 上流呼び出しに要した時間（ミリ秒）
    duration_ms INTEGER NOT NULL,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

-- 最近の利用履歴の取得を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_translations_created_at
    ON translations(created_at);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
