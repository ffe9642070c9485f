package project

import (
	"github.com/initforge/initforge/internal/metadata"
	"github.com/initforge/initforge/internal/version"
)

// Description is a fully resolved project description. Every field has been
// validated against the metadata catalog or filled from a catalog default.
// A Description is built once per conversion and must not be mutated
// afterwards; callers that need a variant should convert a new request.
type Description struct {
	ApplicationName string                `json:"applicationName"`
	GroupID         string                `json:"groupId"`
	ArtifactID      string                `json:"artifactId"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	PackageName     string                `json:"packageName"`
	BaseDir         string                `json:"baseDir"`
	Version         string                `json:"version"`
	BuildSystem     BuildSystem           `json:"buildSystem"`
	Packaging       metadata.Packaging    `json:"packaging"`
	Language        Language              `json:"language"`
	PlatformVersion version.Version       `json:"platformVersion"`
	Dependencies    []metadata.Dependency `json:"dependencies"`
}

// Language is a resolved language descriptor: the catalog language
// identifier together with the JVM version the project targets.
type Language struct {
	ID         string `json:"id"`
	JVMVersion string `json:"jvmVersion"`
}
