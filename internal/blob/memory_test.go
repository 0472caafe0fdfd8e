package blob

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestMemoryPutGetOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	info, err := store.Put(ctx, "submissions/a.json", strings.NewReader(`{"v":1}`), PutOptions{ContentType: "application/json"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Key != "submissions/a.json" || info.Size != 7 {
		t.Fatalf("info = %+v", info)
	}

	// Archive puts replace prior copies under the same key.
	if _, err := store.Put(ctx, "submissions/a.json", strings.NewReader(`{"v":22}`), PutOptions{}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	_, rc, err := store.Get(ctx, "submissions/a.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != `{"v":22}` {
		t.Fatalf("content = %q", data)
	}
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	_, _ = store.Put(ctx, "k", strings.NewReader("v"), PutOptions{})

	existed, err := store.Delete(ctx, "k")
	if err != nil || !existed {
		t.Fatalf("delete: existed=%v err=%v", existed, err)
	}
	existed, err = store.Delete(ctx, "k")
	if err != nil || existed {
		t.Fatalf("second delete: existed=%v err=%v", existed, err)
	}
}

func TestMemoryListPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	for _, key := range []string{"submissions/b.json", "submissions/a.json", "other/c.json"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), PutOptions{}); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}

	infos, err := store.List(ctx, "submissions/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("list = %+v", infos)
	}
	if infos[0].Key != "submissions/a.json" || infos[1].Key != "submissions/b.json" {
		t.Fatalf("list not sorted by key: %+v", infos)
	}
}
