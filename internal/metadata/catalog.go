// Package metadata holds the catalog of legal values for project-generation
// requests: project types, packagings, languages, platform versions and
// dependencies, plus the defaults applied when a request omits a field.
package metadata

// Kind names a catalog entity kind. The validator resolves every request
// field through the same keyed lookup, parameterized by kind.
type Kind string

const (
	// KindType is the project type entity kind.
	KindType Kind = "type"
	// KindPackaging is the packaging entity kind.
	KindPackaging Kind = "packaging"
	// KindLanguage is the language entity kind.
	KindLanguage Kind = "language"
	// KindDependency is the dependency entity kind.
	KindDependency Kind = "dependency"
)

// Type describes a project type. Tags carry build-system hints; a type
// usable for generation must define a "build" tag.
type Type struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     bool              `json:"default,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// Tag returns the value of the named tag, or the empty string when the tag
// is not defined.
func (t Type) Tag(key string) string {
	return t.Tags[key]
}

// Packaging describes a supported packaging format, e.g. "jar" or "war".
type Packaging struct {
	ID      string `json:"id"`
	Default bool   `json:"default,omitempty"`
}

// Language describes a supported implementation language.
type Language struct {
	ID      string `json:"id"`
	Default bool   `json:"default,omitempty"`
}

// BootVersion describes a selectable platform version.
type BootVersion struct {
	ID      string `json:"id"`
	Default bool   `json:"default,omitempty"`
}

// Dependency describes a selectable dependency and its coordinates.
type Dependency struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	GroupID     string `json:"groupId"`
	ArtifactID  string `json:"artifactId"`
	Version     string `json:"version,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Description string `json:"description,omitempty"`
}

// Defaults holds the text-field defaults a new request is initialized with.
type Defaults struct {
	GroupID     string `json:"groupId"`
	ArtifactID  string `json:"artifactId"`
	Version     string `json:"version"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PackageName string `json:"packageName"`
	JavaVersion string `json:"javaVersion"`
}

// Catalog is an immutable snapshot of the generation metadata. Lookups go
// through pre-computed indexes built when the snapshot is created; a catalog
// constructed literally (e.g. in tests) falls back to a linear scan.
type Catalog struct {
	Types        []Type        `json:"types"`
	Packagings   []Packaging   `json:"packagings"`
	Languages    []Language    `json:"languages"`
	BootVersions []BootVersion `json:"bootVersions"`
	Dependencies []Dependency  `json:"dependencies"`
	Defaults     Defaults      `json:"defaults"`

	typesByID        map[string]int
	packagingsByID   map[string]int
	languagesByID    map[string]int
	dependenciesByID map[string]int
}

// buildIndexes builds the per-kind ID indexes. Called once when a snapshot
// is produced by the builder or the loader.
func (c *Catalog) buildIndexes() {
	c.typesByID = make(map[string]int, len(c.Types))
	for i, t := range c.Types {
		c.typesByID[t.ID] = i
	}
	c.packagingsByID = make(map[string]int, len(c.Packagings))
	for i, p := range c.Packagings {
		c.packagingsByID[p.ID] = i
	}
	c.languagesByID = make(map[string]int, len(c.Languages))
	for i, l := range c.Languages {
		c.languagesByID[l.ID] = i
	}
	c.dependenciesByID = make(map[string]int, len(c.Dependencies))
	for i, d := range c.Dependencies {
		c.dependenciesByID[d.ID] = i
	}
}

// lookup is the single keyed-lookup path shared by all entity kinds: hit
// the index when present, scan otherwise.
func lookup[T any](index map[string]int, entries []T, id func(T) string, want string) (T, bool) {
	if index != nil {
		i, ok := index[want]
		if !ok {
			var zero T
			return zero, false
		}
		return entries[i], true
	}
	for _, e := range entries {
		if id(e) == want {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Type finds a project type by ID.
func (c *Catalog) Type(id string) (Type, bool) {
	return lookup(c.typesByID, c.Types, func(t Type) string { return t.ID }, id)
}

// Packaging finds a packaging by ID.
func (c *Catalog) Packaging(id string) (Packaging, bool) {
	return lookup(c.packagingsByID, c.Packagings, func(p Packaging) string { return p.ID }, id)
}

// Language finds a language by ID.
func (c *Catalog) Language(id string) (Language, bool) {
	return lookup(c.languagesByID, c.Languages, func(l Language) string { return l.ID }, id)
}

// Dependency finds a dependency by ID.
func (c *Catalog) Dependency(id string) (Dependency, bool) {
	return lookup(c.dependenciesByID, c.Dependencies, func(d Dependency) string { return d.ID }, id)
}

// DefaultType returns the catalog's default project type.
func (c *Catalog) DefaultType() (Type, bool) {
	for _, t := range c.Types {
		if t.Default {
			return t, true
		}
	}
	return Type{}, false
}

// DefaultPackaging returns the catalog's default packaging.
func (c *Catalog) DefaultPackaging() (Packaging, bool) {
	for _, p := range c.Packagings {
		if p.Default {
			return p, true
		}
	}
	return Packaging{}, false
}

// DefaultLanguage returns the catalog's default language.
func (c *Catalog) DefaultLanguage() (Language, bool) {
	for _, l := range c.Languages {
		if l.Default {
			return l, true
		}
	}
	return Language{}, false
}

// DefaultBootVersion returns the catalog's default platform version string.
func (c *Catalog) DefaultBootVersion() (string, bool) {
	for _, v := range c.BootVersions {
		if v.Default {
			return v.ID, true
		}
	}
	return "", false
}
