package convert

import (
	"unicode"
	"unicode/utf8"

	"github.com/initforge/initforge/internal/project"
)

// applicationNameSuffix is appended to the project name when deriving the
// application name, e.g. "demo" becomes "DemoApplication".
const applicationNameSuffix = "Application"

// normalize fills derivable defaults on a copy of the request before
// validation. It cannot fail; every other field is left for the validator
// to resolve against the catalog.
func normalize(req project.Request) project.Request {
	if req.ApplicationName == "" {
		req.ApplicationName = applicationName(firstNonEmpty(req.Name, req.ArtifactID))
	}
	if req.PackageName == "" && req.GroupID != "" && req.ArtifactID != "" {
		req.PackageName = req.GroupID + "." + req.ArtifactID
	}
	return req
}

// applicationName derives an application name by capitalizing the project
// name and appending the fixed suffix.
func applicationName(name string) string {
	return capitalize(name) + applicationNameSuffix
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
