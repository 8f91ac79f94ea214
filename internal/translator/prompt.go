package translator

import (
	"fmt"
	"strings"
)

// systemPromptFormat はシステム指示のテンプレート。%sに翻訳先言語の表示名が入る。
// 逐語訳ではなく、ネイティブが書いたように読める流暢で自然な訳文を要求し、
// 段落・改行・書式は原文の通り維持させる。
const systemPromptFormat = `You are a professional literary translator with expertise in both the source language and %[1]s.
Your goal is to create a fluent, natural, and idiomatic translation that reads as if it were originally written in %[1]s.
Ensure accuracy and fidelity to the original, but do not copy sentence structure from the source text if a different structure sounds more natural.
Instead of translating word-for-word, rewrite each sentence in the way a native speaker of %[1]s would naturally express it.
Adapt idioms, expressions, and sentence structures where necessary to make the translation sound natural and fluent in %[1]s.

Rephrase sentences freely when necessary to sound natural in %[1]s. If a sentence structure is too English-like, rewrite it in the way a native speaker would phrase it. Focus on idiomatic language in dialogues and avoid direct word-for-word translations. Read every sentence as if you were a native %[1]s author and adjust phrasing accordingly.

Preserve all paragraph breaks, line breaks, and formatting exactly as in the original. Do not add, remove, or merge paragraphs.
Your task is to translate meaningfully and fluently, not mechanically.`

// userPromptFormat はユーザー指示のテンプレート。%[1]sに翻訳先言語の表示名、
// %[2]sに翻訳対象のテキストが入る。
const userPromptFormat = `Please translate the following text into %[1]s.
Ensure accuracy and fidelity to the original, but do not copy sentence structure directly if a different phrasing is more natural.
Instead of translating word-for-word, rewrite each sentence naturally so that a native speaker of %[1]s would say it this way.
Use idiomatic expressions, adjust sentence flow, and restructure phrases where necessary to make the text feel completely fluent and natural.
Preserve paragraph structure, line breaks, and formatting exactly as in the source text.
Here is the text:
%[2]s`

// buildSystemPrompt は翻訳先言語の表示名を埋め込んだシステム指示を構築する。
func buildSystemPrompt(languageName string) string {
	return fmt.Sprintf(systemPromptFormat, languageName)
}

// buildUserPrompt は翻訳対象テキストを含むユーザー指示を構築する。
// chunkContextが空でない場合のみ、直前チャンクの文脈を連続性の手がかりとして
// 先頭に付加する。文書全体の一貫性を実現する唯一の仕組みであり、
// サーバー側はチャンクをまたぐ状態を一切保持しない。
func buildUserPrompt(text, languageName, chunkContext string) string {
	prompt := fmt.Sprintf(userPromptFormat, languageName, text)
	if chunkContext != "" {
		prompt = fmt.Sprintf("Previous translation context: %s\n\n%s", chunkContext, prompt)
	}
	return prompt
}

// wordCount は空白区切りの単語数を返す。
// 言語学的なトークン数ではなく、単純な空白分割による概算。
func wordCount(s string) int {
	return len(strings.Fields(s))
}
