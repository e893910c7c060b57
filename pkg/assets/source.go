package assets

import (
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned by Open for a missing asset.
var ErrNotFound = errors.New("assets: not found")

// ContentInfo describes an opened asset.
type ContentInfo struct {
	Size        int64
	ContentType string
	ModTime     time.Time
	ETag        string
}

// Source opens assets by name.
type Source interface {
	// Open returns the asset content. The caller closes it.
	Open(ctx context.Context, name string) (io.ReadCloser, ContentInfo, error)

	// String describes the source for logs.
	String() string
}

// Parse builds a source from a location string: "s3://bucket/prefix"
// selects an S3 bucket using the default AWS configuration, anything else
// is a local directory.
func Parse(ctx context.Context, location string) (Source, error) {
	if rest, ok := strings.CutPrefix(location, "s3://"); ok {
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return nil, errors.New("assets: s3 location without bucket")
		}
		return NewS3(ctx, bucket, prefix)
	}
	if location == "" {
		return nil, errors.New("assets: empty location")
	}
	return NewDir(location), nil
}

// contentType guesses the MIME type from the name's extension.
func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
