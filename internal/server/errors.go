// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoListeners is returned when neither the HTTP nor the gRPC address is
// configured, or when run is called on a server without listeners.
var errNoListeners = errors.New("no listeners configured")
