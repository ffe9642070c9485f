package convert

import (
	"github.com/initforge/initforge/internal/project"
)

// buildSystems is the closed table mapping catalog build tags to build
// systems. The validator guarantees the tag is present; a tag missing from
// this table means the catalog names a build system this binary does not
// support.
var buildSystems = map[string]project.BuildSystem{
	"gradle": project.Gradle,
	"maven":  project.Maven,
}

// build assembles the immutable description from the normalized request and
// the catalog-resolved fields.
func build(req project.Request, resolved ResolvedFields) (*project.Description, error) {
	buildSystem, ok := buildSystems[resolved.Type.Tag("build")]
	if !ok {
		return nil, &InconsistentCatalogError{
			Message: "no build system registered for build tag '" + resolved.Type.Tag("build") + "'",
		}
	}

	return &project.Description{
		ApplicationName: req.ApplicationName,
		GroupID:         req.GroupID,
		ArtifactID:      req.ArtifactID,
		Name:            req.Name,
		Description:     req.Description,
		PackageName:     req.PackageName,
		BaseDir:         req.BaseDir,
		Version:         req.Version,
		BuildSystem:     buildSystem,
		Packaging:       resolved.Packaging,
		Language: project.Language{
			ID:         resolved.Language.ID,
			JVMVersion: resolved.JVMVersion,
		},
		PlatformVersion: resolved.PlatformVersion,
		Dependencies:    resolved.Dependencies,
	}, nil
}
