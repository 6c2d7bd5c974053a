package tier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augur/internal/entropy/models"
)

func TestHexBulk(t *testing.T) {
	ctx := context.Background()

	newBulk := func(t *testing.T, body string) (*HexBulk, *string) {
		t.Helper()
		var gotLength string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLength = r.URL.Query().Get("length")
			_, _ = w.Write([]byte(body))
		}))
		t.Cleanup(srv.Close)
		return NewHexBulk(models.ProvenanceQuantum, srv.URL+"/api/get_bits?type=quantum&length={bits}", time.Second, srv.Client()), &gotLength
	}

	t.Run("requests four bits per digit", func(t *testing.T) {
		bulk, gotLength := newBulk(t, `{"bits": "`+strings.Repeat("a", 24)+`"}`)

		bits, err := bulk.Fetch(ctx, 24)
		require.NoError(t, err)
		assert.Equal(t, "96", *gotLength)
		assert.Len(t, bits, 24)
	})

	t.Run("short payload is bad_data", func(t *testing.T) {
		bulk, _ := newBulk(t, `{"bits": "abcd"}`)

		_, err := bulk.Fetch(ctx, 24)
		assert.Equal(t, CategoryBadData, CategoryOf(err))
	})

	t.Run("non-hex payload is bad_data", func(t *testing.T) {
		bulk, _ := newBulk(t, `{"bits": "`+strings.Repeat("z", 24)+`"}`)

		_, err := bulk.Fetch(ctx, 24)
		assert.Equal(t, CategoryBadData, CategoryOf(err))
	})
}
