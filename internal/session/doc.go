// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the bearer tokens for the two mutually exclusive
// login roles (regular user and admin). Tokens are opaque strings handed
// out by the server; the store is a flat role-to-token map with no expiry
// and no encryption. The file backend survives restarts so a login outlives
// a single run of the client.
package session
