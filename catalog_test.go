/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/aliasstore/errors"
)

func TestCatalog(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		catalog := NewCatalog()
		require.NoError(t, RegisterStore(catalog, "loaders", newLoaderStore()))

		retrieved, err := GetStore[TestLoader](catalog, "loaders")
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, 2, retrieved.Len())

		assert.Equal(t, []string{"loaders"}, catalog.ListStores())

		require.NoError(t, catalog.RemoveStore("loaders"))

		_, err = GetStore[TestLoader](catalog, "loaders")
		assert.True(t, errors.IsNotFound(err))
		assert.True(t, errors.IsNotFound(catalog.RemoveStore("loaders")))
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		catalog := NewCatalog()
		require.NoError(t, RegisterStore(catalog, "loaders", newLoaderStore()))

		err := RegisterStore(catalog, "loaders", newLoaderStore())
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("NilStore", func(t *testing.T) {
		catalog := NewCatalog()

		err := RegisterStore[TestLoader](catalog, "loaders", nil)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("DifferentTypes", func(t *testing.T) {
		catalog := NewCatalog()
		require.NoError(t, RegisterStore(catalog, "loaders", newLoaderStore()))
		require.NoError(t, RegisterStore(catalog, "codecs", NewStore[TestCodec]()))

		_, err := GetStore[TestCodec](catalog, "codecs")
		require.NoError(t, err)

		_, err = GetStore[TestCodec](catalog, "loaders")
		assert.True(t, errors.IsValidationError(err))

		assert.Equal(t, []string{"codecs", "loaders"}, catalog.ListStores())
	})
}

func TestCatalogThreadSafety(t *testing.T) {
	catalog := NewCatalog()
	done := make(chan bool)

	// Concurrent writes
	for i := 0; i < 10; i++ {
		go func(id int) {
			_ = RegisterStore(catalog, fmt.Sprintf("store%d", id), NewStore[TestLoader]())
			done <- true
		}(i)
	}

	// Concurrent reads
	for i := 0; i < 10; i++ {
		go func() {
			catalog.ListStores()
			done <- true
		}()
	}

	// Wait for completion
	for i := 0; i < 20; i++ {
		<-done
	}

	assert.Len(t, catalog.ListStores(), 10)
}
