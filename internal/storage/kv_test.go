package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func kvImplementations(t *testing.T) map[string]KV {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return map[string]KV{
		"sqlite": store,
		"memory": NewMemoryKV(),
	}
}

func TestKVRoundTrip(t *testing.T) {
	for name, kv := range kvImplementations(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := kv.Get("mc-lite:matthieu"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get() on missing key = %v, expected ErrNotFound", err)
			}

			if err := kv.Put("mc-lite:matthieu", []byte{1, 2, 3}); err != nil {
				t.Fatalf("Put() failed: %v", err)
			}
			if err := kv.Put("mc-lite:matthieu", []byte{4, 5}); err != nil {
				t.Fatalf("second Put() failed: %v", err)
			}

			got, err := kv.Get("mc-lite:matthieu")
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if !bytes.Equal(got, []byte{4, 5}) {
				t.Errorf("Get() = %v, expected the overwritten value [4 5]", got)
			}

			if err := kv.Delete("mc-lite:matthieu"); err != nil {
				t.Fatalf("Delete() failed: %v", err)
			}
			if _, err := kv.Get("mc-lite:matthieu"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after Delete() = %v, expected ErrNotFound", err)
			}
			if err := kv.Delete("mc-lite:matthieu"); err != nil {
				t.Errorf("Delete() of a missing key failed: %v", err)
			}
		})
	}
}

func TestKVKeysByPrefix(t *testing.T) {
	for name, kv := range kvImplementations(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"mc-lite:b", "mc-lite:a", "other:a", "mc-lite"} {
				if err := kv.Put(k, []byte(k)); err != nil {
					t.Fatalf("Put(%q) failed: %v", k, err)
				}
			}

			keys, err := kv.Keys("mc-lite:")
			if err != nil {
				t.Fatalf("Keys() failed: %v", err)
			}
			expected := []string{"mc-lite:a", "mc-lite:b"}
			if !reflect.DeepEqual(keys, expected) {
				t.Errorf("Keys() = %v, expected %v", keys, expected)
			}
		})
	}
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	value := []byte{1, 2, 3}
	if err := kv.Put("k", value); err != nil {
		t.Fatal(err)
	}
	value[0] = 9

	got, _ := kv.Get("k")
	if got[0] != 1 {
		t.Error("MemoryKV should not alias the caller's slice")
	}
}
