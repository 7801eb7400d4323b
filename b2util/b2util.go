package b2util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/showroom-motors/site/cache"
	"github.com/showroom-motors/site/config"
)

var tokenCache *cache.Cache[string]

// ErrNotConfigured is returned when B2 credentials are missing.
var ErrNotConfigured = errors.New("B2 credentials not set")

// Init initializes the B2 token cache. This should be called during application startup.
func Init() error {
	var err error
	tokenCache, err = cache.New[string](func(value string) int64 {
		return int64(len(value))
	}, "B2 Token Cache")
	return err
}

// ImageURL returns the public URL of one size variant of an uploaded image.
// size is a Size suffix such as "480w".
func ImageURL(key, size string) string {
	if key == "" {
		return ""
	}
	return config.GetB2ImageURL(VariantPath(key, size))
}

// ThumbnailURL is ImageURL for the listing card size.
func ThumbnailURL(key string) string {
	return ImageURL(key, SizeCard)
}

// tokenTTL keeps tokens ten minutes short of their B2 expiry so they are
// refreshed before they lapse.
func tokenTTL() time.Duration {
	return time.Duration(config.B2DownloadTokenExpiry-600) * time.Second
}

// GetDownloadTokenCached returns a cached B2 download authorization token for
// a key prefix such as "cars/".
func GetDownloadTokenCached(prefix string) (string, error) {
	if token, found := tokenCache.Get(prefix); found {
		return token, nil
	}
	token, err := getDownloadToken(prefix)
	if err != nil {
		return "", err
	}
	tokenCache.SetWithTTL(prefix, token, int64(len(token)), tokenTTL())
	return token, nil
}

// SignedURL appends a download authorization to ImageURL for private buckets.
func SignedURL(key, size string) (string, error) {
	prefix := key
	if i := strings.LastIndex(key, "/"); i >= 0 {
		prefix = key[:i+1]
	}
	token, err := GetDownloadTokenCached(prefix)
	if err != nil {
		return "", err
	}
	return ImageURL(key, size) + "?Authorization=" + token, nil
}

// CacheStats returns cache statistics for admin monitoring
func CacheStats() map[string]interface{} {
	if tokenCache == nil {
		return map[string]interface{}{"cache_type": "B2 Token Cache"}
	}
	stats := tokenCache.Stats()

	stats["b2_token_ttl_seconds"] = config.B2DownloadTokenExpiry
	stats["b2_cache_ttl_seconds"] = config.B2DownloadTokenExpiry - 600
	stats["b2_cache_ttl_formatted"] = fmt.Sprintf("%.1f minutes", float64(config.B2DownloadTokenExpiry-600)/60)
	stats["b2_token_expiry_formatted"] = fmt.Sprintf("%.1f minutes", float64(config.B2DownloadTokenExpiry)/60)

	return stats
}

// ClearCache clears all cached tokens
func ClearCache() {
	if tokenCache != nil {
		tokenCache.Clear()
	}
}

func configured() bool {
	return config.B2MasterKeyID != "" && config.B2KeyID != "" && config.B2AppKey != "" && config.B2BucketID != ""
}

// getDownloadToken asks B2 for a download authorization limited to prefix.
func getDownloadToken(prefix string) (string, error) {
	if !configured() {
		return "", ErrNotConfigured
	}
	req, _ := http.NewRequest("GET", config.B2AuthEndpoint, nil)
	req.SetBasicAuth(config.B2KeyID, config.B2AppKey)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("B2 auth error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("B2 auth failed: %s", resp.Status)
	}
	var authResp struct {
		APIURL    string `json:"apiUrl"`
		AuthToken string `json:"authorizationToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return "", fmt.Errorf("B2 auth decode error: %w", err)
	}

	body, _ := json.Marshal(map[string]interface{}{
		"bucketId":               config.B2BucketID,
		"fileNamePrefix":         prefix,
		"validDurationInSeconds": config.B2DownloadTokenExpiry,
	})
	req2, _ := http.NewRequest("POST", authResp.APIURL+config.B2DownloadAuthEndpoint, bytes.NewReader(body))
	req2.Header.Set("Authorization", authResp.AuthToken)
	req2.Header.Set("Content-Type", "application/json")
	resp2, err := http.DefaultClient.Do(req2)
	if err != nil {
		return "", fmt.Errorf("B2 get_download_authorization error: %w", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		return "", fmt.Errorf("B2 get_download_authorization failed: %s", resp2.Status)
	}
	var tokenResp struct {
		AuthorizationToken string `json:"authorizationToken"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("B2 token decode error: %w", err)
	}
	return tokenResp.AuthorizationToken, nil
}
