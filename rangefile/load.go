package rangefile

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ranges"
)

// SaveFile encodes m into a file at path, truncating an existing file.
func SaveFile[K cmp.Ordered, V any](m ranges.MultiMap[K, V], path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return Save(m, file)
}

// LoadFile reads a range map file previously written by SaveFile.
func LoadFile[K cmp.Ordered, V any](path string) (ranges.MultiMap[K, V], error) {
	info, err := os.Stat(path)
	if err != nil {
		return ranges.MultiMap[K, V]{}, err
	}
	if !info.Mode().IsRegular() {
		return ranges.MultiMap[K, V]{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return ranges.MultiMap[K, V]{}, err
	}
	defer file.Close()
	tracer().Debugf("range file: loading %q (%d bytes)", path, info.Size())
	return Load[K, V](file)
}

// Stream decodes like Load, but broadcasts every decoded entry through cast
// before the final build. Clients subscribe to cast beforehand to observe
// progress on large files; the caster is closed when the stream ends,
// whether decoding succeeded or not.
func Stream[K cmp.Ordered, V any](r io.Reader, cast *caster.Caster) (ranges.MultiMap[K, V], error) {
	defer cast.Close()
	b := ranges.NewBuilder[K, V]()
	err := decodeInto(r, b, func(e ranges.Entry[K, V]) {
		cast.Pub(e)
	})
	if err != nil {
		return ranges.MultiMap[K, V]{}, err
	}
	return b.Build()
}
