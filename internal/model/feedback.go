// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Feedback ratings accepted by the server.
const (
	RatingPositive = "positive"
	RatingNegative = "negative"
)

// Review is a single feedback entry shown on the admin dashboard.
type Review struct {
	Rating string `json:"rating"`
	Review string `json:"review"`
}

// Stats holds the dashboard counters. The server pre-formats them as
// display strings, so they are passed through verbatim.
type Stats struct {
	Users    string `json:"users"`
	Positive string `json:"positive"`
	Negative string `json:"negative"`
	Diseases string `json:"diseases"`
}
