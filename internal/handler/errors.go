// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransports means the server config enables neither HTTP nor gRPC.
var errNoTransports = errors.New("no transport enabled")
