// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It parses a command and its operands, calls the user API through
// [adapter.UserAPI] and renders the results to the terminal with lipgloss.
package client
