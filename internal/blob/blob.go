// Package blob abstracts the object store holding avatars and post images.
// The store is addressed by key and returns retrievable references (URLs);
// its wire protocol is opaque to the rest of the application.
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/webp" // register WebP decoder
)

// Store is the capability surface of the blob store.
type Store interface {
	// Put writes content under key, overwriting any prior object, and
	// returns a retrievable reference.
	Put(ctx context.Context, key string, content []byte, contentType string) (string, error)
	// Delete removes the object under key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// MaxImageBytes caps uploaded image size.
const MaxImageBytes = 10 << 20

// ErrNotAnImage is returned when uploaded bytes do not decode as a supported image.
var ErrNotAnImage = errors.New("blob: content is not a supported image")

var formatContentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// SniffImage validates that content is a decodable image and returns its
// content type and file extension.
func SniffImage(content []byte) (contentType, ext string, err error) {
	if len(content) == 0 {
		return "", "", ErrNotAnImage
	}
	if len(content) > MaxImageBytes {
		return "", "", fmt.Errorf("blob: image exceeds %d bytes", MaxImageBytes)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return "", "", ErrNotAnImage
	}
	ct, ok := formatContentTypes[format]
	if !ok {
		return "", "", ErrNotAnImage
	}
	return ct, "." + format, nil
}

// AvatarKey derives the stable storage key for a user's avatar. Re-uploading
// overwrites the prior avatar at the same key.
func AvatarKey(userID, ext string) string {
	return fmt.Sprintf("avatars/%s%s", userID, ext)
}

// PostImageKey derives the storage key for a post image.
func PostImageKey(postID, ext string) string {
	return fmt.Sprintf("posts/%s%s", postID, ext)
}
