package parser

import (
	"fmt"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/sneedlang/sneed/source/ast"
	"github.com/sneedlang/sneed/source/settings"
)

// The FileParser parses files, keeping the trees of recently parsed ones. A file
// that has changed size or modification time since it was cached is parsed again.
type FileParser struct {
	cache *lru.Cache[fileKey, *ast.Root]
}

type fileKey struct {
	path  string
	size  int64
	mtime time.Time
}

func NewFileParser() *FileParser {
	cache, err := lru.New[fileKey, *ast.Root](settings.PARSE_CACHE_SIZE)
	if err != nil {
		panic(err) // Only happens if the size isn't positive.
	}
	return &FileParser{cache: cache}
}

// ParseFile returns the tree of the file at path. A file that can't be read gives
// an *Error with no position, since the parser never got to it.
func (fp *FileParser) ParseFile(path string) (*ast.Root, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &Error{Source: path, Msg: errors.Wrap(err, "can't open file").Error()}
	}
	key := fileKey{path: path, size: info.Size(), mtime: info.ModTime()}
	if node, ok := fp.cache.Get(key); ok {
		return node, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Source: path, Msg: errors.Wrap(err, "can't read file").Error()}
	}
	node, err := Parse(path, string(data))
	if err != nil {
		return nil, err
	}
	fp.cache.Add(key, node)
	return node, nil
}

// Len is the number of trees in the cache.
func (fp *FileParser) Len() int {
	return fp.cache.Len()
}

func (fp *FileParser) String() string {
	return fmt.Sprintf("FileParser{%d cached}", fp.cache.Len())
}
