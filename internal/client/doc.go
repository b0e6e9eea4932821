// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses a subcommand with its arguments, calls the account service
// through an [adapter.AccountsAdapter] and prints the result as JSON.
package client
