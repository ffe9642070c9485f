package metadata

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CurrentAndSwap(t *testing.T) {
	first := NewCatalogBuilder().WithDefaults().Build()
	second := NewCatalogBuilder().WithDefaults().
		AddDependency(Dependency{ID: "actuator", GroupID: "org.springframework.boot",
			ArtifactID: "spring-boot-starter-actuator"}).
		Build()

	r := NewRegistry(first)
	assert.Same(t, first, r.Current())

	r.Swap(second)
	assert.Same(t, second, r.Current())
}

func TestRegistry_SnapshotSurvivesSwap(t *testing.T) {
	first := NewCatalogBuilder().WithDefaults().Build()
	r := NewRegistry(first)

	held := r.Current()
	r.Swap(NewCatalogBuilder().Build())

	// The snapshot obtained before the swap still answers lookups.
	_, ok := held.Type("maven-project")
	assert.True(t, ok)
}

func TestRegistry_Refresh(t *testing.T) {
	r := NewRegistry(NewCatalogBuilder().WithDefaults().Build())

	fresh := NewCatalogBuilder().WithDefaults().
		AddLanguage(Language{ID: "scala"}).
		Build()
	err := r.Refresh(context.Background(), func(context.Context) (*Catalog, error) {
		return fresh, nil
	})
	require.NoError(t, err)
	assert.Same(t, fresh, r.Current())
}

func TestRegistry_RefreshFailureKeepsSnapshot(t *testing.T) {
	initial := NewCatalogBuilder().WithDefaults().Build()
	r := NewRegistry(initial)

	err := r.Refresh(context.Background(), func(context.Context) (*Catalog, error) {
		return nil, errors.New("source unavailable")
	})
	require.Error(t, err)
	assert.Same(t, initial, r.Current())
}

func TestRegistry_ConcurrentReadersAndSwaps(t *testing.T) {
	r := NewRegistry(NewCatalogBuilder().WithDefaults().Build())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c := r.Current()
				if _, ok := c.Type("maven-project"); !ok {
					t.Error("reader observed incomplete snapshot")
					return
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.Swap(NewCatalogBuilder().WithDefaults().Build())
			}
		}()
	}
	wg.Wait()
}
