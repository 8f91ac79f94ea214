// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// セッションCookieの検証（認証ゲート）、パニックリカバリ、CORS設定など、
// 翻訳サービスのHTTP層で共通して使用するミドルウェアを含む。
package middleware
