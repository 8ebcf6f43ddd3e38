// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package llm rephrases text through a hosted language model.

Two providers are supported. GeminiClient speaks the native
generateContent API. OpenAIClient speaks any OpenAI-compatible chat
completions endpoint (Gemini exposes one as well). Both sit behind a
GuardedClient that applies a token-bucket rate limit and a circuit breaker
and records provider metrics.

Rephraser builds the fixed "Say-It-Nicer" prompt and post-processes replies.
*/
package llm
