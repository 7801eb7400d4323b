package b2util

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"github.com/showroom-motors/site/config"
	"golang.org/x/image/draw"
	"gopkg.in/kothar/go-backblaze.v0"
)

// Size variants written for every uploaded image
const (
	SizeCard = "480w"
	SizeFull = "1200w"
)

type variant struct {
	Width   int
	Suffix  string
	Quality float32
}

var variants = []variant{
	{480, SizeCard, 70},
	{1200, SizeFull, 80},
}

// ObjectStore is the subset of a B2 bucket the upload path needs.
type ObjectStore interface {
	Put(path, contentType string, data []byte) error
	Remove(path string) error
}

type bucketStore struct {
	bucket *backblaze.Bucket
}

func (s bucketStore) Put(path, contentType string, data []byte) error {
	_, err := s.bucket.UploadTypedFile(path, contentType, nil, bytes.NewReader(data))
	return err
}

// Remove hides the file; the bucket lifecycle rule purges hidden versions.
func (s bucketStore) Remove(path string) error {
	_, err := s.bucket.HideFile(path)
	return err
}

var (
	store     ObjectStore
	storeOnce sync.Once
	storeErr  error
)

func getStore() (ObjectStore, error) {
	if store != nil {
		return store, nil
	}
	storeOnce.Do(func() {
		if !configured() {
			storeErr = ErrNotConfigured
			return
		}
		b2, err := backblaze.NewB2(backblaze.Credentials{
			AccountID:      config.B2MasterKeyID,
			ApplicationKey: config.B2AppKey,
			KeyID:          config.B2KeyID,
		})
		if err != nil {
			storeErr = fmt.Errorf("B2 auth error: %w", err)
			return
		}
		bucket, err := b2.Bucket(config.B2BucketName)
		if err != nil {
			storeErr = fmt.Errorf("B2 bucket error: %w", err)
			return
		}
		log.Printf("[b2] Connected to bucket %s", config.B2BucketName)
		store = bucketStore{bucket: bucket}
	})
	if storeErr != nil {
		return nil, storeErr
	}
	return store, nil
}

// SetStoreForTesting replaces the bucket used by UploadImage and DeleteImage.
func SetStoreForTesting(s ObjectStore) {
	store = s
}

// VariantPath is the object name of one size of the image stored under key.
func VariantPath(key, size string) string {
	return fmt.Sprintf("%s-%s.webp", key, size)
}

// NewKey returns a fresh object key stem under prefix.
func NewKey(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "/" + uuid.NewString()
}

// EncodeVariants decodes a jpeg, png or gif and returns a webp encoding per
// size suffix. Images narrower than a variant are not upscaled.
func EncodeVariants(r io.Reader) (map[string][]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}

	out := make(map[string][]byte, len(variants))
	for _, v := range variants {
		w := min(v.Width, bounds.Dx())
		h := max(bounds.Dy()*w/bounds.Dx(), 1)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

		var buf bytes.Buffer
		if err := webp.Encode(&buf, dst, &webp.Options{Lossless: false, Quality: v.Quality}); err != nil {
			return nil, fmt.Errorf("webp encode %s: %w", v.Suffix, err)
		}
		out[v.Suffix] = buf.Bytes()
	}
	return out, nil
}

// UploadImage stores every size variant of r under a new key in prefix and
// returns the key stem.
func UploadImage(prefix string, r io.Reader) (string, error) {
	s, err := getStore()
	if err != nil {
		return "", err
	}
	encoded, err := EncodeVariants(r)
	if err != nil {
		return "", err
	}

	key := NewKey(prefix)
	for _, v := range variants {
		path := VariantPath(key, v.Suffix)
		if err := s.Put(path, "image/webp", encoded[v.Suffix]); err != nil {
			log.Printf("[b2] ERROR: Upload failed for %s: %v", path, err)
			return "", fmt.Errorf("upload %s: %w", path, err)
		}
		log.Printf("[b2] Uploaded %s (%d bytes)", path, len(encoded[v.Suffix]))
	}
	return key, nil
}

// DeleteImage removes every size variant of key. All variants are attempted
// and the first failure is returned.
func DeleteImage(key string) error {
	if key == "" {
		return nil
	}
	s, err := getStore()
	if err != nil {
		return err
	}
	var firstErr error
	for _, v := range variants {
		path := VariantPath(key, v.Suffix)
		if err := s.Remove(path); err != nil {
			log.Printf("[b2] Delete failed for %s: %v", path, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
