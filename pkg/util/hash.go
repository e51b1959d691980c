package util

import (
	"fmt"
	"github.com/twmb/murmur3"
)

// HashFunc ...
func HashFunc(data []byte) uint32 {
	return murmur3.Sum32(data)
}

// ETag returns a weak entity tag of data
func ETag(data []byte) string {
	return fmt.Sprintf(`W/"%08x"`, HashFunc(data))
}
