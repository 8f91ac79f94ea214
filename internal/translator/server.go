package translator

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hiori/honyaku/internal/completion"
	"github.com/hiori/honyaku/internal/config"
	"github.com/hiori/honyaku/internal/language"
	translatordb "github.com/hiori/honyaku/internal/translator/db"
	"github.com/hiori/honyaku/pkg/middleware"
)

//go:embed web/index.html
var indexHTML []byte

// usageLimit はGET /usageで返す利用履歴の最大件数。
const usageLimit = 50

// Server は翻訳チャンクサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg は起動時に解決されたサービス設定。
	cfg *config.Config
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *translatordb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// completer は外部補完サービスへのクライアント。
	completer completion.Completer
}

// NewServer は新しい翻訳サーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行う。
func NewServer(cfg *config.Config) (*Server, error) {
	sqlDB, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{cfg.FrontendURL}))

	s := &Server{
		router:    router,
		cfg:       cfg,
		queries:   translatordb.New(sqlDB),
		db:        sqlDB,
		completer: completion.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL),
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.cfg.Port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// 認証不要のエンドポイント
	s.router.GET("/", s.handleIndex())
	s.router.POST("/login", s.handleLogin())
	s.router.POST("/logout", s.handleLogout())
	s.router.GET("/check-auth", s.handleCheckAuth())
	s.router.GET("/languages", s.handleLanguages())

	// 認証必須のエンドポイント
	authed := s.router.Group("/")
	authed.Use(middleware.SessionAuth(s.cfg.SecretKey))
	{
		authed.POST("/translate-chunk", s.handleTranslateChunk())
		authed.GET("/usage", s.handleUsage())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "honyaku"})
	})
}

// handleIndex は埋め込み済みのクライアントページを返すハンドラ。
func (s *Server) handleIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	}
}

// loginRequest はログインリクエストのJSON構造。
type loginRequest struct {
	// Username は設定済みユーザー名と完全一致で比較される。
	Username string `json:"username"`
	// Password は設定済みパスワードと完全一致で比較される。
	Password string `json:"password"`
}

// handleLogin は資格情報を検証しセッションCookieを発行するハンドラ。
// 資格情報が未設定の場合、開発モードに限り固定のフォールバック（admin/admin）を
// 受け付け、それ以外は設定不備として401を返す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		// ボディが不正な場合は空の資格情報として比較する
		_ = c.ShouldBindJSON(&req)

		if s.cfg.AuthUsername == "" || s.cfg.AuthPassword == "" {
			if s.cfg.DevMode && req.Username == "admin" && req.Password == "admin" {
				s.issueSession(c)
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication not properly configured"})
			return
		}

		if req.Username == s.cfg.AuthUsername && req.Password == s.cfg.AuthPassword {
			s.issueSession(c)
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	}
}

// issueSession はセッショントークンを生成しCookieに設定する。
func (s *Server) issueSession(c *gin.Context) {
	token, err := middleware.GenerateSessionToken(s.cfg.SecretKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		log.Printf("セッショントークン生成エラー: %v", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(middleware.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleLogout はセッションCookieを破棄するハンドラ。
// 未ログイン状態で呼ばれても成功を返す（冪等）。
func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// handleCheckAuth は現在のセッションが認証済みかどうかを返すハンドラ。
// Cookieが無い・無効な場合も未認証として200で返し、エラーにはしない。
func (s *Server) handleCheckAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(middleware.SessionCookieName)
		authenticated := err == nil && middleware.ParseSessionToken(s.cfg.SecretKey, token)
		c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
	}
}

// handleLanguages は利用可能な翻訳先言語のマッピングを返すハンドラ。
func (s *Server) handleLanguages() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, language.List())
	}
}

// translateRequest は翻訳リクエストのJSON構造。
// フィールド名は既存クライアントとの互換性のため変更しないこと。
type translateRequest struct {
	// Text は翻訳対象のチャンク本文。
	Text string `json:"text"`
	// TargetLanguage は翻訳先の言語コード。
	TargetLanguage string `json:"target_language"`
	// Context は直前チャンクまでの文脈。空の場合は連続性の指示を省略する。
	Context string `json:"context"`
}

// translateResponse は翻訳結果のJSONレスポンス構造。
type translateResponse struct {
	// TranslatedText は翻訳されたチャンク本文。
	TranslatedText string `json:"translated_text"`
	// OriginalWordCount は原文の単語数（空白区切り）。
	OriginalWordCount int `json:"original_word_count"`
	// TranslatedWordCount は訳文の単語数（空白区切り）。
	TranslatedWordCount int `json:"translated_word_count"`
}

// handleTranslateChunk はチャンクを翻訳するハンドラ。
// パラメータと言語コードを検証してから上流の補完サービスを1回呼び出し、
// 訳文と単語数を返す。上流の失敗はリトライせず500で返す。
func (s *Server) handleTranslateChunk() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req translateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
			return
		}
		if req.Text == "" || req.TargetLanguage == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
			return
		}

		languageName, ok := language.DisplayName(req.TargetLanguage)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported target language"})
			return
		}

		start := time.Now()
		translated, err := s.completer.Complete(
			c.Request.Context(),
			buildSystemPrompt(languageName),
			buildUserPrompt(req.Text, languageName, req.Context),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			log.Printf("翻訳エラー: %v", err)
			return
		}

		resp := translateResponse{
			TranslatedText:      translated,
			OriginalWordCount:   wordCount(req.Text),
			TranslatedWordCount: wordCount(translated),
		}

		// 利用ログへの記録失敗は翻訳結果の返却を妨げない
		if err := s.queries.CreateTranslation(c.Request.Context(), translatordb.CreateTranslationParams{
			ID:                  uuid.New().String(),
			TargetLanguage:      req.TargetLanguage,
			OriginalWordCount:   int64(resp.OriginalWordCount),
			TranslatedWordCount: int64(resp.TranslatedWordCount),
			DurationMs:          time.Since(start).Milliseconds(),
		}); err != nil {
			log.Printf("利用ログの記録に失敗: %v", err)
		}

		c.JSON(http.StatusOK, resp)
	}
}

// usageResponse は利用履歴1件のJSONレスポンス構造。
type usageResponse struct {
	// ID は翻訳リクエストの一意識別子。
	ID string `json:"id"`
	// TargetLanguage は翻訳先の言語コード。
	TargetLanguage string `json:"target_language"`
	// OriginalWordCount は原文の単語数。
	OriginalWordCount int64 `json:"original_word_count"`
	// TranslatedWordCount は訳文の単語数。
	TranslatedWordCount int64 `json:"translated_word_count"`
	// DurationMs は上流呼び出しに要した時間（ミリ秒）。
	DurationMs int64 `json:"duration_ms"`
	// CreatedAt は作成日時（RFC3339形式）。
	CreatedAt string `json:"created_at"`
}

// toUsageResponses はDB行のスライスをJSONレスポンスのスライスに変換する。
func toUsageResponses(translations []translatordb.Translation) []usageResponse {
	responses := make([]usageResponse, 0, len(translations))
	for _, tr := range translations {
		responses = append(responses, usageResponse{
			ID:                  tr.ID,
			TargetLanguage:      tr.TargetLanguage,
			OriginalWordCount:   tr.OriginalWordCount,
			TranslatedWordCount: tr.TranslatedWordCount,
			DurationMs:          tr.DurationMs,
			CreatedAt:           tr.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses
}

// handleUsage は最近の翻訳利用履歴を返すハンドラ。
func (s *Server) handleUsage() gin.HandlerFunc {
	return func(c *gin.Context) {
		translations, err := s.queries.ListRecentTranslations(c.Request.Context(), usageLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load usage history"})
			log.Printf("利用履歴取得エラー: %v", err)
			return
		}
		c.JSON(http.StatusOK, toUsageResponses(translations))
	}
}
