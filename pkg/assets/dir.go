package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vango-dev/vroute/pkg/routepath"
)

// Dir serves assets from a local directory.
type Dir struct {
	root string
}

// NewDir creates a source rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

var _ Source = (*Dir)(nil)

// Open implements Source.
func (d *Dir) Open(_ context.Context, name string) (io.ReadCloser, ContentInfo, error) {
	clean, err := routepath.AssetName(name)
	if err != nil {
		return nil, ContentInfo{}, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}

	f, err := os.Open(filepath.Join(d.root, filepath.FromSlash(clean)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ContentInfo{}, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return nil, ContentInfo{}, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ContentInfo{}, err
	}
	if st.IsDir() {
		f.Close()
		return nil, ContentInfo{}, fmt.Errorf("%w: %s is a directory", ErrNotFound, clean)
	}

	return f, ContentInfo{
		Size:        st.Size(),
		ContentType: contentType(clean),
		ModTime:     st.ModTime(),
	}, nil
}

// String implements Source.
func (d *Dir) String() string {
	return "dir:" + d.root
}
