package cache

import (
	"testing"
	"time"
)

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("k", "val", 0, nil)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("nonexistent-key-xyz"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	c.Set("short", 1, time.Nanosecond, []string{"t"})
	time.Sleep(time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("Get expired: want false")
	}
	if keys := c.GetKeysByTag("t"); len(keys) != 0 {
		t.Errorf("expired key still tagged: %v", keys)
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	if got := c.GetOrDefault("k", "default"); got != "default" {
		t.Errorf("GetOrDefault missing = %v, want default", got)
	}
	c.Set("k", "stored", 0, nil)
	if got := c.GetOrDefault("k", "default"); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestDelete_RemovesFromTagIndex(t *testing.T) {
	c := NewCache()
	c.Set("del-tag-key", "v", 0, []string{"t2"})
	c.Delete("del-tag-key")
	if keys := c.GetKeysByTag("t2"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after Delete = %d keys, want 0", len(keys))
	}
}

func TestDeleteByTag(t *testing.T) {
	c := NewCache()
	c.Set("tag-k1", "v1", 0, []string{"t1"})
	c.Set("tag-k2", "v2", 0, []string{"t1", "other"})
	c.Set("untagged", "v3", 0, nil)

	if keys := c.GetKeysByTag("t1"); len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}
	if n := c.DeleteByTag("t1"); n != 2 {
		t.Errorf("DeleteByTag = %d, want 2", n)
	}
	if _, ok := c.Get("tag-k1"); ok {
		t.Error("DeleteByTag: tag-k1 should be gone")
	}
	if _, ok := c.Get("tag-k2"); ok {
		t.Error("DeleteByTag: tag-k2 should be gone")
	}
	if _, ok := c.Get("untagged"); !ok {
		t.Error("DeleteByTag removed an untagged key")
	}
	if n := c.DeleteByTag("t1"); n != 0 {
		t.Errorf("second DeleteByTag = %d, want 0", n)
	}
}
