package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(catalogLoads.WithLabelValues("error"))
	CatalogLoad(errors.New("timeout"))
	CatalogLoad(nil)
	assert.Equal(t, before+1, testutil.ToFloat64(catalogLoads.WithLabelValues("error")))

	before = testutil.ToFloat64(inquiries.WithLabelValues("stored"))
	Inquiry("stored")
	assert.Equal(t, before+1, testutil.ToFloat64(inquiries.WithLabelValues("stored")))

	ImageUpload(nil)
	assert.GreaterOrEqual(t, testutil.ToFloat64(imageUploads.WithLabelValues("success")), 1.0)
}

func TestHandler(t *testing.T) {
	CatalogResults(4)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "showroom_catalog_filtered_results_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}
