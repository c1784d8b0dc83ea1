// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of go-user-keeper.
//
// Each invocation runs one subcommand (register, login, list, get, update,
// delete, passwd, version) against the server through an
// [adapter.ServerAdapter] and prints the result. Users are rendered as
// lipgloss tables.
package client
