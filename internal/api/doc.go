// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the WellBot server.
//
// All calls target a single base URL and return parsed JSON or a typed
// failure. Authenticated calls attach "Authorization: Bearer <token>" using
// the token for the role the endpoint belongs to: the user token for chat,
// feedback, and profile calls, the admin token for dashboard calls.
//
// The client never retries on its own; the user resubmits. Server error
// detail, when present, is read from the response's "detail" field and
// surfaced verbatim.
package api
