package driver

import (
	"testing"
)

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache()
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return cache
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	key := DigestBytes([]byte("java.lang.String\n"))
	payload := &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Content: key,
		Lines: []LineResult{
			{Line: 1, Source: "java.lang.String", Rendered: "String..String?"},
		},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("get: hit=%v err=%v", hit, err)
	}
	if len(got.Lines) != 1 || got.Lines[0].Rendered != "String..String?" {
		t.Fatalf("payload mangled: %+v", got)
	}
}

func TestDiskCacheMisses(t *testing.T) {
	cache := openTestCache(t)
	var got DiskPayload
	hit, err := cache.Get(DigestBytes([]byte("absent")), &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatalf("expected a miss")
	}
}

func TestDiskCacheSchemaMismatchIsAMiss(t *testing.T) {
	cache := openTestCache(t)
	key := DigestBytes([]byte("x"))
	stale := &DiskPayload{Schema: diskCacheSchemaVersion + 1, Content: key}
	if err := cache.Put(key, stale); err != nil {
		t.Fatalf("put: %v", err)
	}
	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatalf("stale schema must read as a miss")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache := openTestCache(t)
	key := DigestBytes([]byte("y"))
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("get after drop: %v", err)
	}
	if hit {
		t.Fatalf("cache must be empty after DropAll")
	}
	// A second drop on the empty cache is a no-op.
	if err := cache.DropAll(); err != nil {
		t.Fatalf("second drop: %v", err)
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put(Digest{}, nil); err != nil {
		t.Fatalf("nil put: %v", err)
	}
	hit, err := cache.Get(Digest{}, &DiskPayload{})
	if err != nil || hit {
		t.Fatalf("nil get: hit=%v err=%v", hit, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("nil drop: %v", err)
	}
}
