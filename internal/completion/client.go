package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Completer は1回のテキスト補完を実行するインターフェース。
type Completer interface {
	// Complete はシステム指示とユーザー指示を送信し、単一の補完テキストを返す。
	Complete(ctx context.Context, system, user string) (string, error)
}

// model は使用するモデル識別子。
const model = openai.ChatModelGPT4_1

// temperature はサンプリング温度。低い値で出力のばらつきを抑える。
const temperature = 0.3

// defaultTimeout は上流呼び出し1回あたりの上限時間。
// 文学作品のチャンクは補完に数分かかることがあるため長めに取る。
const defaultTimeout = 280 * time.Second

// Client はOpenAI Chat Completions APIを使うCompleter実装。
type Client struct {
	// client はOpenAI APIクライアント。
	client openai.Client
	// timeout は1リクエストあたりの上限時間。
	timeout time.Duration
}

// New は新しいOpenAI補完クライアントを生成する。
// baseURLが空でない場合は接続先を上書きする（テストや互換ゲートウェイ経由で使用）。
func New(apiKey, baseURL string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		client:  openai.NewClient(opts...),
		timeout: defaultTimeout,
	}
}

// Complete は補完リクエストを1回送信し、最初の候補のテキストを返す。
// リトライは行わず、失敗はそのまま呼び出し側へ返す。
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
