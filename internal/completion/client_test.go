package completion

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestClientComplete はOpenAI補完クライアントをモックサーバーで検証する。
func TestClientComplete(t *testing.T) {
	t.Parallel()

	t.Run("正常に補完テキストが返ること", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Hola mundo"},"finish_reason":"stop"}]}`)
		}))
		t.Cleanup(srv.Close)

		client := New("test-key", srv.URL)
		got, err := client.Complete(t.Context(), "system instruction", "user instruction")
		if err != nil {
			t.Fatalf("Complete()でエラーが発生: %v", err)
		}
		if got != "Hola mundo" {
			t.Errorf("Complete() = %q, want %q", got, "Hola mundo")
		}
	})

	t.Run("モデル・温度・メッセージがリクエストに含まれること", func(t *testing.T) {
		t.Parallel()

		var captured map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Errorf("リクエストボディのデコードに失敗: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id":"chatcmpl-2","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`)
		}))
		t.Cleanup(srv.Close)

		client := New("test-key", srv.URL)
		if _, err := client.Complete(t.Context(), "you are a translator", "translate this"); err != nil {
			t.Fatalf("Complete()でエラーが発生: %v", err)
		}

		if captured["model"] != "gpt-4.1" {
			t.Errorf("model = %v, want %q", captured["model"], "gpt-4.1")
		}
		if temp, ok := captured["temperature"].(float64); !ok || temp != 0.3 {
			t.Errorf("temperature = %v, want 0.3", captured["temperature"])
		}

		messages, ok := captured["messages"].([]any)
		if !ok || len(messages) != 2 {
			t.Fatalf("messages = %v, want 2件", captured["messages"])
		}
		first, _ := messages[0].(map[string]any)
		second, _ := messages[1].(map[string]any)
		if first["role"] != "system" || first["content"] != "you are a translator" {
			t.Errorf("1件目のメッセージ = %v, want systemロール", first)
		}
		if second["role"] != "user" || second["content"] != "translate this" {
			t.Errorf("2件目のメッセージ = %v, want userロール", second)
		}
	})

	t.Run("上流がエラーを返した場合にエラーが返ること", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":{"message":"upstream exploded","type":"server_error"}}`)
		}))
		t.Cleanup(srv.Close)

		client := New("test-key", srv.URL)
		_, err := client.Complete(t.Context(), "system", "user")
		if err == nil {
			t.Fatal("Complete()がエラーを返すべき")
		}
	})

	t.Run("候補が空のレスポンスでエラーが返ること", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id":"chatcmpl-3","object":"chat.completion","choices":[]}`)
		}))
		t.Cleanup(srv.Close)

		client := New("test-key", srv.URL)
		_, err := client.Complete(t.Context(), "system", "user")
		if err == nil {
			t.Fatal("Complete()がエラーを返すべき")
		}
		if !strings.Contains(err.Error(), "no choices") {
			t.Errorf("エラーメッセージ = %q, want %q を含む", err.Error(), "no choices")
		}
	})
}
