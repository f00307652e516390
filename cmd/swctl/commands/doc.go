// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package commands implements the swctl command tree. Every command talks to
// a running server over HTTP, selected with --server.
package commands
