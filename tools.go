//go:build tools

package main

// This file ensures that build-time dependencies are tracked in go.mod
// even though they're not imported in regular Go code.
// The fakes under pkg/job/jobfakes are generated with this counterfeiter version.

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
