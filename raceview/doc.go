// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package raceview sorts, filters, and averages fetched race records. Every
// function is pure; views keep the fetched snapshot and call Project again
// whenever the selected year or sort changes.
package raceview
