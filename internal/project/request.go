// Package project defines the raw project request and the validated
// project description it is converted into.
package project

import "github.com/initforge/initforge/internal/metadata"

// Request is a raw project-generation request as received from a client.
// Nothing is validated at this point: fields may be empty, and identifier
// fields may reference catalog entries that do not exist. The converter is
// responsible for resolving and rejecting them.
type Request struct {
	Type            string   `json:"type"`
	Language        string   `json:"language"`
	Packaging       string   `json:"packaging"`
	BootVersion     string   `json:"bootVersion"`
	JavaVersion     string   `json:"javaVersion"`
	Dependencies    []string `json:"dependencies"`
	GroupID         string   `json:"groupId"`
	ArtifactID      string   `json:"artifactId"`
	Version         string   `json:"version"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PackageName     string   `json:"packageName"`
	ApplicationName string   `json:"applicationName"`
	BaseDir         string   `json:"baseDir"`
}

// NewRequest returns a request pre-populated with the catalog defaults,
// matching what an untouched generation form would submit. Fields without a
// catalog default (baseDir, applicationName) stay empty.
func NewRequest(c *metadata.Catalog) Request {
	req := Request{
		GroupID:     c.Defaults.GroupID,
		ArtifactID:  c.Defaults.ArtifactID,
		Version:     c.Defaults.Version,
		Name:        c.Defaults.Name,
		Description: c.Defaults.Description,
		PackageName: c.Defaults.PackageName,
		JavaVersion: c.Defaults.JavaVersion,
	}
	if t, ok := c.DefaultType(); ok {
		req.Type = t.ID
	}
	if p, ok := c.DefaultPackaging(); ok {
		req.Packaging = p.ID
	}
	if l, ok := c.DefaultLanguage(); ok {
		req.Language = l.ID
	}
	if v, ok := c.DefaultBootVersion(); ok {
		req.BootVersion = v
	}
	return req
}
