// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package admin provides the admin dashboard screen: usage stats, the
// latest feedback reviews, and full editing of the disease knowledge
// base. All three data sets are fetched in parallel on entry and after
// every mutation.
package admin
