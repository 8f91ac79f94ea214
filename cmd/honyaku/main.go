// 翻訳チャンクサービスのエントリポイント。
// 認証、言語レジストリ、外部補完サービスを使った逐次翻訳APIを提供する。
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hiori/honyaku/internal/config"
	"github.com/hiori/honyaku/internal/translator"
)

func main() {
	// .envは任意。環境変数が直接与えられている場合（Docker等）は無くてもよい。
	_ = godotenv.Load()

	cfg := config.Load()

	server, err := translator.NewServer(cfg)
	if err != nil {
		log.Fatalf("翻訳サーバーの初期化に失敗: %v", err)
	}

	log.Printf("翻訳サービスを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("翻訳サービスの起動に失敗: %v", err)
	}
}
