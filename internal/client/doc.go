// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless sync client runtime.
//
// [App.Execute] dispatches one command. The default "run" applies the
// configured storage mode, plan and password to the client services, opens a
// sealed vault, then keeps the connectivity monitor and periodic sync running
// until the process is asked to stop, sealing the vault again on exit. The
// other commands drive the vault lifecycle, backups and local entity writes
// once and return.
package client
