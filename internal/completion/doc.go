// Package completion は外部のLLMテキスト補完サービスとの境界を提供する。
//
// サービス本体からはCompleterインターフェース越しに利用し、
// テストではスタブ実装に差し替える。実装はOpenAI Chat Completions APIを
// 使用し、モデル・温度・タイムアウトはこのパッケージ内で固定する。
package completion
