package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	c := NewCatalogBuilder().WithDefaults().Build()

	typ, ok := c.Type("gradle-project")
	require.True(t, ok)
	assert.Equal(t, "gradle", typ.Tag("build"))

	_, ok = c.Type("foo-build")
	assert.False(t, ok)

	p, ok := c.Packaging("war")
	require.True(t, ok)
	assert.Equal(t, "war", p.ID)

	_, ok = c.Packaging("star")
	assert.False(t, ok)

	l, ok := c.Language("kotlin")
	require.True(t, ok)
	assert.Equal(t, "kotlin", l.ID)

	_, ok = c.Language("english")
	assert.False(t, ok)

	d, ok := c.Dependency("web")
	require.True(t, ok)
	assert.Equal(t, "spring-boot-starter-web", d.ArtifactID)

	_, ok = c.Dependency("invalid")
	assert.False(t, ok)
}

func TestCatalogDefaults(t *testing.T) {
	c := NewCatalogBuilder().WithDefaults().Build()

	typ, ok := c.DefaultType()
	require.True(t, ok)
	assert.Equal(t, "maven-project", typ.ID)

	p, ok := c.DefaultPackaging()
	require.True(t, ok)
	assert.Equal(t, "jar", p.ID)

	l, ok := c.DefaultLanguage()
	require.True(t, ok)
	assert.Equal(t, "java", l.ID)

	v, ok := c.DefaultBootVersion()
	require.True(t, ok)
	assert.Equal(t, "2.1.1.RELEASE", v)

	assert.Equal(t, "com.example", c.Defaults.GroupID)
	assert.Equal(t, "demo", c.Defaults.ArtifactID)
	assert.Equal(t, "1.8", c.Defaults.JavaVersion)
}

func TestCatalogLookups_WithoutIndexes(t *testing.T) {
	// A literally constructed catalog has no indexes and must fall back to
	// scanning.
	c := &Catalog{
		Types:      []Type{{ID: "maven-project", Tags: map[string]string{"build": "maven"}}},
		Packagings: []Packaging{{ID: "jar", Default: true}},
	}

	typ, ok := c.Type("maven-project")
	require.True(t, ok)
	assert.Equal(t, "maven", typ.Tag("build"))

	_, ok = c.Type("missing")
	assert.False(t, ok)

	p, ok := c.DefaultPackaging()
	require.True(t, ok)
	assert.Equal(t, "jar", p.ID)
}

func TestCatalogBuilder_Additions(t *testing.T) {
	c := NewCatalogBuilder().
		AddType(Type{ID: "custom", Tags: map[string]string{"build": "gradle"}}).
		AddPackaging(Packaging{ID: "exploded"}).
		AddLanguage(Language{ID: "scala"}).
		AddBootVersion(BootVersion{ID: "3.0.0", Default: true}).
		AddDependency(Dependency{ID: "cache", GroupID: "org.example", ArtifactID: "cache"}).
		Build()

	_, ok := c.Type("custom")
	assert.True(t, ok)
	_, ok = c.Packaging("exploded")
	assert.True(t, ok)
	_, ok = c.Language("scala")
	assert.True(t, ok)
	v, ok := c.DefaultBootVersion()
	require.True(t, ok)
	assert.Equal(t, "3.0.0", v)
	_, ok = c.Dependency("cache")
	assert.True(t, ok)
}

func TestType_Tag(t *testing.T) {
	typ := Type{ID: "bare"}
	assert.Empty(t, typ.Tag("build"))

	typ = Type{ID: "tagged", Tags: map[string]string{"build": "maven"}}
	assert.Equal(t, "maven", typ.Tag("build"))
}
