// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the non-interactive command-line client.
//
// Every invocation restores the cached session through the session holder,
// runs one subcommand against it and renders the outcome with lipgloss.
// Failed operations print a short user-facing message and make Run return
// the underlying error so the process exits non-zero.
package client
