package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// loadDotEnv reads an optional .env file once. Values already present in the
// environment take precedence.
func loadDotEnv() {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Printf("[config] Loaded .env file")
		}
	})
}

func getEnv(key, fallback string) string {
	loadDotEnv()
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] Invalid integer for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] Invalid number for %s: %q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] Invalid duration for %s: %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

// Server
var (
	ServerPort          = getEnv("PORT", "8080")
	BaseURL             = getEnv("BASE_URL", "http://localhost:8080")
	ServerUploadLimit   = getEnvInt("SERVER_UPLOAD_LIMIT", 20*1024*1024)
	ServerRateLimitMax  = getEnvInt("SERVER_RATE_LIMIT_MAX", 120)
	ServerRateLimitExp  = getEnvDuration("SERVER_RATE_LIMIT_EXP", time.Minute)
	ServerRedirectDelay = getEnvDuration("SERVER_REDIRECT_DELAY", time.Second)

	// InquiryRateLimitMax bounds contact-form submissions per IP.
	InquiryRateLimitMax = getEnvInt("INQUIRY_RATE_LIMIT_MAX", 5)
	InquiryRateLimitExp = getEnvDuration("INQUIRY_RATE_LIMIT_EXP", 10*time.Minute)
)

// Database
var DatabaseURL = getEnv("DATABASE_URL", "showroom.db")

// Auth
var (
	JWTSecret     = getEnv("JWT_SECRET", "change-me")
	JWTExpiration = getEnvDuration("JWT_EXPIRATION", 24*time.Hour)
)

// Catalog
var (
	// CatalogURL points the public listing at a remote catalog endpoint.
	// Empty means the listing reads this site's own database.
	CatalogURL      = getEnv("CATALOG_URL", "")
	CatalogTimeout  = getEnvDuration("CATALOG_TIMEOUT", 10*time.Second)
	CatalogPageSize = getEnvInt("CATALOG_PAGE_SIZE", 9)
	CatalogMaxPrice = getEnvFloat("CATALOG_MAX_PRICE", 10000000)
)

// Backblaze B2
var (
	B2MasterKeyID          = getEnv("BACKBLAZE_MASTER_KEY_ID", "")
	B2KeyID                = getEnv("BACKBLAZE_KEY_ID", "")
	B2AppKey               = getEnv("BACKBLAZE_APP_KEY", "")
	B2BucketID             = getEnv("B2_BUCKET_ID", "")
	B2BucketName           = getEnv("B2_BUCKET_NAME", "showroom-images")
	B2FileServerURL        = getEnv("B2_FILE_SERVER_URL", "https://f004.backblazeb2.com/file")
	B2AuthEndpoint         = getEnv("B2_AUTH_ENDPOINT", "https://api.backblazeb2.com/b2api/v2/b2_authorize_account")
	B2DownloadAuthEndpoint = "/b2api/v2/b2_get_download_authorization"
	B2DownloadTokenExpiry  = int64(getEnvInt("B2_DOWNLOAD_TOKEN_EXPIRY", 3600))
)

// GetB2ImageURL returns the public download URL for an object in the image bucket.
func GetB2ImageURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", B2FileServerURL, B2BucketName, key)
}

// Twilio
var (
	TwilioAccountSID = getEnv("TWILIO_ACCOUNT_SID", "")
	TwilioAuthToken  = getEnv("TWILIO_AUTH_TOKEN", "")
	TwilioFromNumber = getEnv("TWILIO_FROM_NUMBER", "")
	DealerPhone      = getEnv("DEALER_PHONE", "")
)

// SendGrid
var (
	SendGridAPIKey    = getEnv("SENDGRID_API_KEY", "")
	SendGridFromEmail = getEnv("SENDGRID_FROM_EMAIL", "")
	SendGridEndpoint  = getEnv("SENDGRID_ENDPOINT", "https://api.sendgrid.com/v3/mail/send")
	DealerEmail       = getEnv("DEALER_EMAIL", "")
)

// Gemini + Qdrant
var (
	GeminiAPIKey              = getEnv("GEMINI_API_KEY", "")
	GeminiEmbeddingModel      = getEnv("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001")
	GeminiEmbeddingDimensions = getEnvInt("GEMINI_EMBEDDING_DIMENSIONS", 768)

	QdrantHost                    = getEnv("QDRANT_HOST", "")
	QdrantPort                    = getEnvInt("QDRANT_PORT", 6334)
	QdrantAPIKey                  = getEnv("QDRANT_API_KEY", "")
	QdrantCollection              = getEnv("QDRANT_COLLECTION", "cars")
	QdrantProcessingQueueSize     = getEnvInt("QDRANT_PROCESSING_QUEUE_SIZE", 100)
	QdrantProcessingSleepInterval = getEnvDuration("QDRANT_PROCESSING_SLEEP_INTERVAL", time.Second)
	SimilarCarsLimit              = getEnvInt("SIMILAR_CARS_LIMIT", 4)
)

// Front-end assets
var (
	TailwindCSSURL = getEnv("TAILWIND_CSS_URL", "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css")
	HTMXURL        = getEnv("HTMX_URL", "https://unpkg.com/htmx.org@2.0.4")
)

// Currency is the code shown next to prices.
var Currency = getEnv("CURRENCY", "AED")
