// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides chat transcript persistence for the wellbot
// client. One JSON document is kept per username; entries expire seven days
// after their last save and are replaced lazily, on load, with a fresh
// welcome transcript. There is no background sweep and no cap on the number
// of stored transcripts.
package storage
