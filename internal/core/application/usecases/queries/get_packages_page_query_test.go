package queries_test

import (
	"testing"

	"tracker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPackagesPageQuery(t *testing.T) {
	t.Run("valid paging values are kept", func(t *testing.T) {
		query := queries.NewGetPackagesPageQuery(3, 25, "sent")

		require.NoError(t, query.Validate())
		assert.Equal(t, 3, query.Page())
		assert.Equal(t, 25, query.PageSize())
		assert.Equal(t, "sent", query.Search())
	})

	t.Run("page below one is coerced to the first page", func(t *testing.T) {
		for _, page := range []int{0, -1, -100} {
			query := queries.NewGetPackagesPageQuery(page, 10, "")
			assert.Equal(t, queries.DefaultPage, query.Page())
		}
	})

	t.Run("page size out of range is coerced to the default", func(t *testing.T) {
		for _, pageSize := range []int{0, -5, 51, 1000} {
			query := queries.NewGetPackagesPageQuery(1, pageSize, "")
			assert.Equal(t, queries.DefaultPageSize, query.PageSize())
		}
	})

	t.Run("boundary page sizes are kept", func(t *testing.T) {
		assert.Equal(t, 1, queries.NewGetPackagesPageQuery(1, 1, "").PageSize())
		assert.Equal(t, queries.MaxPageSize, queries.NewGetPackagesPageQuery(1, queries.MaxPageSize, "").PageSize())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetPackagesPageQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetPackagesPageQueryIsNotConstructed)
	})
}
