package metadata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/initforge/initforge/internal/metadata/cache"
)

func catalogDocument(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(NewCatalogBuilder().WithDefaults().Build())
	require.NoError(t, err)
	return data
}

func TestParse(t *testing.T) {
	c, err := Parse(catalogDocument(t))
	require.NoError(t, err)

	typ, ok := c.Type("gradle-project")
	require.True(t, ok)
	assert.Equal(t, "gradle", typ.Tag("build"))

	v, ok := c.DefaultBootVersion()
	require.True(t, ok)
	assert.Equal(t, "2.1.1.RELEASE", v)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.Error(t, err)
}

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, os.WriteFile(path, catalogDocument(t), 0644))

	l := NewLoader(path, zap.NewNop())
	c, err := l.Load(context.Background())
	require.NoError(t, err)

	_, ok := c.Type("maven-project")
	assert.True(t, ok)
}

func TestLoader_FileMissing(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	_, err := l.Load(context.Background())
	assert.Error(t, err)
}

func TestLoader_Remote(t *testing.T) {
	doc := catalogDocument(t)
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write(doc)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, zap.NewNop())
	c, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	_, ok := c.Dependency("web")
	assert.True(t, ok)
}

func TestLoader_RemoteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, zap.NewNop())
	_, err := l.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestLoader_CacheAvoidsRefetch(t *testing.T) {
	doc := catalogDocument(t)
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(doc)
	}))
	defer srv.Close()

	mem := cache.NewMemory()
	defer mem.Close()
	l := NewLoader(srv.URL, zap.NewNop(), WithCache(mem, time.Minute))

	ctx := context.Background()
	_, err := l.Load(ctx)
	require.NoError(t, err)
	_, err = l.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second load must be served from cache")
}

func TestLoader_InvalidateForcesRefetch(t *testing.T) {
	doc := catalogDocument(t)
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(doc)
	}))
	defer srv.Close()

	mem := cache.NewMemory()
	defer mem.Close()
	l := NewLoader(srv.URL, zap.NewNop(), WithCache(mem, time.Minute))

	ctx := context.Background()
	_, err := l.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, l.Invalidate(ctx))
	_, err = l.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, hits)
}
