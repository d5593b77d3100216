// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

// Package client implements the application runtime.
//
// It wires local storage, the remote record store client and the vault
// services into a single process lifecycle, and exposes the session
// operations (sign-in, sign-out) that sit above the service layer.
package client
