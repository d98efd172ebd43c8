// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

const devVersion = "develop"

// Version is overridden at build time:
//
//	-ldflags "-X github.com/k14s/yambler/pkg/version.Version=0.1.0"
var Version = devVersion

// RequireAtLeast fails when this build of yambler is older than minVersion.
// Development builds satisfy every requirement.
func RequireAtLeast(minVersion string) error {
	constraint, err := goversion.NewConstraint(">= " + minVersion)
	if err != nil {
		return fmt.Errorf("Parsing minimum version '%s': %w", minVersion, err)
	}

	if Version == devVersion {
		return nil
	}

	current, err := goversion.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("Parsing yambler version '%s': %w", Version, err)
	}

	if !constraint.Check(current) {
		return fmt.Errorf("yambler version %s does not meet the minimum required version %s", Version, minVersion)
	}

	return nil
}
