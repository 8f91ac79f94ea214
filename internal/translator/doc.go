// Package translator は翻訳チャンクサービスの内部実装を提供する。
//
// ログイン・ログアウトによるセッション管理、言語レジストリの公開、
// 外部補完サービスへの翻訳指示の構築と呼び出し、翻訳結果の整形を担当する。
// チャンクをまたぐ文脈はサーバー側に保持せず、呼び出し側がcontextとして
// 毎回渡すことで文書全体の一貫性を実現する。
package translator
