package convert

import (
	"github.com/initforge/initforge/internal/metadata"
	"github.com/initforge/initforge/internal/project"
	"github.com/initforge/initforge/internal/version"
)

// minSupportedRaw is the lowest platform version projects can be generated
// for.
const minSupportedRaw = "1.5.0"

var minSupportedVersion = version.MustParse(minSupportedRaw)

// ResolvedFields carries the catalog-resolved request fields from the
// validator to the description builder.
type ResolvedFields struct {
	Type            metadata.Type
	PlatformVersion version.Version
	Packaging       metadata.Packaging
	Language        metadata.Language
	JVMVersion      string
	Dependencies    []metadata.Dependency
}

// validate resolves each request field against the catalog in a fixed
// order, returning the first failure. Fields the request omits are filled
// from the catalog defaults.
func validate(req project.Request, catalog *metadata.Catalog) (ResolvedFields, error) {
	var resolved ResolvedFields
	var err error

	if resolved.Type, err = resolveType(req, catalog); err != nil {
		return ResolvedFields{}, err
	}
	if resolved.PlatformVersion, err = resolvePlatformVersion(req, catalog); err != nil {
		return ResolvedFields{}, err
	}
	if resolved.Packaging, err = resolvePackaging(req, catalog); err != nil {
		return ResolvedFields{}, err
	}
	if resolved.Language, err = resolveLanguage(req, catalog); err != nil {
		return ResolvedFields{}, err
	}
	resolved.JVMVersion = firstNonEmpty(req.JavaVersion, catalog.Defaults.JavaVersion)
	if resolved.Dependencies, err = resolveDependencies(req, catalog); err != nil {
		return ResolvedFields{}, err
	}
	return resolved, nil
}

func resolveType(req project.Request, catalog *metadata.Catalog) (metadata.Type, error) {
	t, ok := catalog.Type(req.Type)
	if !ok {
		return metadata.Type{}, errUnknown(FieldType, req.Type)
	}
	if t.Tag("build") == "" {
		return metadata.Type{}, errMissingBuildTag(t.ID)
	}
	return t, nil
}

// resolvePlatformVersion parses and checks a requested version. A request
// without a version resolves to the catalog default, which is exempt from
// the minimum-version check.
func resolvePlatformVersion(req project.Request, catalog *metadata.Catalog) (version.Version, error) {
	if req.BootVersion != "" {
		v, err := version.Parse(req.BootVersion)
		if err != nil || !v.AtLeast(minSupportedVersion) {
			return version.Version{}, errBootVersion(req.BootVersion)
		}
		return v, nil
	}

	raw, ok := catalog.DefaultBootVersion()
	if !ok {
		return version.Version{}, &InconsistentCatalogError{Message: "no default platform version"}
	}
	v, err := version.Parse(raw)
	if err != nil {
		return version.Version{}, &InconsistentCatalogError{Message: "malformed default platform version " + raw}
	}
	return v, nil
}

func resolvePackaging(req project.Request, catalog *metadata.Catalog) (metadata.Packaging, error) {
	if req.Packaging != "" {
		p, ok := catalog.Packaging(req.Packaging)
		if !ok {
			return metadata.Packaging{}, errUnknown(FieldPackaging, req.Packaging)
		}
		return p, nil
	}

	p, ok := catalog.DefaultPackaging()
	if !ok {
		return metadata.Packaging{}, &InconsistentCatalogError{Message: "no default packaging"}
	}
	return p, nil
}

func resolveLanguage(req project.Request, catalog *metadata.Catalog) (metadata.Language, error) {
	if req.Language != "" {
		l, ok := catalog.Language(req.Language)
		if !ok {
			return metadata.Language{}, errUnknown(FieldLanguage, req.Language)
		}
		return l, nil
	}

	l, ok := catalog.DefaultLanguage()
	if !ok {
		return metadata.Language{}, &InconsistentCatalogError{Message: "no default language"}
	}
	return l, nil
}

// resolveDependencies resolves every requested dependency, failing on the
// first identifier the catalog does not know.
func resolveDependencies(req project.Request, catalog *metadata.Catalog) ([]metadata.Dependency, error) {
	if len(req.Dependencies) == 0 {
		return nil, nil
	}

	resolved := make([]metadata.Dependency, 0, len(req.Dependencies))
	for _, id := range req.Dependencies {
		d, ok := catalog.Dependency(id)
		if !ok {
			return nil, errUnknown(FieldDependency, id)
		}
		resolved = append(resolved, d)
	}
	return resolved, nil
}
