// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment according to the `env`
// and `envPrefix` tags of [StructuredConfig].
//
// env reports every malformed variable at once; each of them is kept in the
// returned error so the operator can fix them in one go.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, errors.Join(aggErr.Errors...))
	}

	return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
}
