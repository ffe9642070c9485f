package metadata

// CatalogBuilder assembles a Catalog snapshot. The zero value is an empty
// catalog; WithDefaults seeds the builder with the standard generation
// metadata used when no external metadata source is configured.
type CatalogBuilder struct {
	catalog Catalog
}

// NewCatalogBuilder returns an empty catalog builder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{}
}

// WithDefaults seeds the builder with the standard types, packagings,
// languages, platform versions, dependencies and request defaults.
func (b *CatalogBuilder) WithDefaults() *CatalogBuilder {
	b.catalog = Catalog{
		Types: []Type{
			{ID: "maven-project", Name: "Maven Project", Default: true,
				Tags: map[string]string{"build": "maven", "format": "project"}},
			{ID: "maven-build", Name: "Maven POM",
				Tags: map[string]string{"build": "maven", "format": "build"}},
			{ID: "gradle-project", Name: "Gradle Project",
				Tags: map[string]string{"build": "gradle", "format": "project"}},
			{ID: "gradle-build", Name: "Gradle Config",
				Tags: map[string]string{"build": "gradle", "format": "build"}},
		},
		Packagings: []Packaging{
			{ID: "jar", Default: true},
			{ID: "war"},
		},
		Languages: []Language{
			{ID: "java", Default: true},
			{ID: "groovy"},
			{ID: "kotlin"},
		},
		BootVersions: []BootVersion{
			{ID: "2.1.1.RELEASE", Default: true},
			{ID: "2.0.3.RELEASE"},
			{ID: "1.5.17.RELEASE"},
		},
		Dependencies: []Dependency{
			{ID: "web", Name: "Web", GroupID: "org.springframework.boot",
				ArtifactID: "spring-boot-starter-web"},
			{ID: "security", Name: "Security", GroupID: "org.springframework.boot",
				ArtifactID: "spring-boot-starter-security"},
			{ID: "data-jpa", Name: "Data JPA", GroupID: "org.springframework.boot",
				ArtifactID: "spring-boot-starter-data-jpa"},
		},
		Defaults: Defaults{
			GroupID:     "com.example",
			ArtifactID:  "demo",
			Version:     "0.0.1-SNAPSHOT",
			Name:        "demo",
			Description: "Demo project for Spring Boot",
			PackageName: "com.example.demo",
			JavaVersion: "1.8",
		},
	}
	return b
}

// AddType appends a project type.
func (b *CatalogBuilder) AddType(t Type) *CatalogBuilder {
	b.catalog.Types = append(b.catalog.Types, t)
	return b
}

// AddPackaging appends a packaging.
func (b *CatalogBuilder) AddPackaging(p Packaging) *CatalogBuilder {
	b.catalog.Packagings = append(b.catalog.Packagings, p)
	return b
}

// AddLanguage appends a language.
func (b *CatalogBuilder) AddLanguage(l Language) *CatalogBuilder {
	b.catalog.Languages = append(b.catalog.Languages, l)
	return b
}

// AddBootVersion appends a platform version.
func (b *CatalogBuilder) AddBootVersion(v BootVersion) *CatalogBuilder {
	b.catalog.BootVersions = append(b.catalog.BootVersions, v)
	return b
}

// AddDependency appends a dependency.
func (b *CatalogBuilder) AddDependency(d Dependency) *CatalogBuilder {
	b.catalog.Dependencies = append(b.catalog.Dependencies, d)
	return b
}

// Defaults replaces the request defaults.
func (b *CatalogBuilder) Defaults(d Defaults) *CatalogBuilder {
	b.catalog.Defaults = d
	return b
}

// Build finalizes the catalog and builds its lookup indexes.
func (b *CatalogBuilder) Build() *Catalog {
	c := b.catalog
	c.buildIndexes()
	return &c
}
