// SPDX-License-Identifier: MIT

package config

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig marks unreadable documents and values that are not
	// numbers or not valid tolerances. The underlying cause stays attached.
	ErrInvalidConfig = errors.New("config: invalid tolerance configuration")

	// ErrUnknownProfile is returned by Config.Context for an undefined profile.
	ErrUnknownProfile = errors.New("config: unknown tolerance profile")
)
