package correlation

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInject(t *testing.T) {
	t.Run("copies id from context", func(t *testing.T) {
		ctx := WithID(context.Background(), "corr-1")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://upstream/admin/stats", nil)
		require.NoError(t, err)

		Inject(req)

		assert.Equal(t, "corr-1", req.Header.Get(HeaderName))
	})

	t.Run("leaves header unset without id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "http://upstream/admin/stats", nil)
		require.NoError(t, err)

		Inject(req)

		assert.Empty(t, req.Header.Get(HeaderName))
	})
}

func TestNewID(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
	assert.Len(t, NewID(), 36)
}
