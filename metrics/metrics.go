package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector the site exports at /metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	catalogLoads = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "showroom",
		Name:      "catalog_loads_total",
		Help:      "Catalog fetches by outcome.",
	}, []string{"outcome"})

	catalogResults = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: "showroom",
		Name:      "catalog_filtered_results",
		Help:      "Number of cars left after filtering a listing request.",
		Buckets:   []float64{0, 1, 3, 9, 27, 81, 243},
	})

	imageUploads = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "showroom",
		Name:      "image_uploads_total",
		Help:      "Admin image uploads by outcome.",
	}, []string{"outcome"})

	inquiries = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "showroom",
		Name:      "inquiries_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// CatalogLoad records one catalog fetch.
func CatalogLoad(err error) {
	catalogLoads.WithLabelValues(outcome(err)).Inc()
}

// CatalogResults records the size of a filtered listing.
func CatalogResults(n int) {
	catalogResults.Observe(float64(n))
}

// ImageUpload records one image upload.
func ImageUpload(err error) {
	imageUploads.WithLabelValues(outcome(err)).Inc()
}

// Inquiry records a contact form submission. result is "stored", "invalid",
// "limited" or "error".
func Inquiry(result string) {
	inquiries.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
