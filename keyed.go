package arena

import "github.com/cespare/xxhash/v2"

// KeyedHandle derives an unmanaged handle for key. Keys are hashed into one
// of buckets slots spaced stride words apart, starting at base. Two keys in
// different buckets never overlap while each holds fewer than stride values;
// keys that hash to the same bucket share a region.
//
// A zero buckets or stride maps every key to base.
func KeyedHandle(key []byte, base, buckets, stride Word) Handle {
	return keyedHandle(xxhash.Sum64(key), base, buckets, stride)
}

// KeyedHandleString is KeyedHandle for string keys.
func KeyedHandleString(key string, base, buckets, stride Word) Handle {
	return keyedHandle(xxhash.Sum64String(key), base, buckets, stride)
}

func keyedHandle(sum uint64, base, buckets, stride Word) Handle {
	if buckets == 0 || stride == 0 {
		return RawHandle(base)
	}
	return RawHandle(base + (Word(sum)%buckets)*stride)
}
