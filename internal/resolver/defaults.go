// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"path/filepath"
	"strings"

	"github.com/MKhiriev/autolog/internal/environ"
	"github.com/MKhiriev/autolog/models"
)

// Vars are the values the resolver publishes into the environment.
type Vars struct {
	ProjectName string
	RunLocally  bool
}

// DefaultVars returns the variables published when the project has no
// autolog configuration: the project is named after the root directory and
// runs remotely.
func DefaultVars(projectRoot string) Vars {
	return Vars{
		ProjectName: pathStem(projectRoot),
		RunLocally:  false,
	}
}

func (v Vars) publish(store environ.Store) error {
	if err := store.Set(models.EnvProjectName, v.ProjectName); err != nil {
		return err
	}
	return store.Set(models.EnvRunLocally, models.FormatRunLocally(v.RunLocally))
}

// pathStem returns the final path element without its last suffix. A leading
// dot does not start a suffix, so ".config" stays ".config".
func pathStem(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	name := filepath.Base(filepath.Clean(path))
	if name == string(filepath.Separator) || name == "." {
		return ""
	}

	if i := strings.LastIndexByte(name, '.'); i > 0 && i < len(name)-1 {
		return name[:i]
	}
	return name
}
