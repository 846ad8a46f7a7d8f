package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("Get(empty) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("png"), time.Hour); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "png" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("hit after Delete")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(missing) = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	c.Set(ctx, "old", []byte("x"), time.Nanosecond)
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("old")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}

	c.Set(ctx, "forever", []byte("x"), 0)
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl missing")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	c.Set(ctx, "k", []byte("x"), 0)
	os.WriteFile(c.path("k"), []byte("{not json"), 0o644)

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get(corrupt) = hit %v, err %v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "c")
	c, _ := NewFileCache(dir)
	c.Set(ctx, "graph:a", []byte("1"), 0)
	c.Set(ctx, "report:b", []byte("2"), 0)

	n, err := c.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Clear() removed %d entries, want 2", n)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 0 {
		t.Errorf("after Clear: %d entries, err %v", len(entries), err)
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q", c.Dir())
	}
}

func TestFileCacheStats(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	k := NewScopedKeyer(nil, "ikreport:")
	c.Set(ctx, k.GraphKey("g1", GraphKeyOpts{Format: "png"}), []byte("png"), time.Hour)
	c.Set(ctx, k.GraphKey("g2", GraphKeyOpts{Format: "svg"}), []byte("svg"), time.Hour)
	c.Set(ctx, NewDefaultKeyer().ReportKey("b1", ReportKeyOpts{Kind: "fk"}), []byte("tex"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	st, err := c.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Entries != 3 || st.Expired != 1 || st.Bytes == 0 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.ByKind["graph"] != 2 || st.ByKind["report"] != 1 {
		t.Errorf("ByKind = %v", st.ByKind)
	}
}

func TestFileCacheKeyMismatch(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	c.Set(ctx, "graph:a", []byte("1"), 0)

	// An envelope for another key at this key's path reads as a miss.
	raw, _ := os.ReadFile(c.path("graph:a"))
	os.MkdirAll(filepath.Dir(c.path("graph:b")), 0o755)
	os.WriteFile(c.path("graph:b"), raw, 0o644)
	if _, hit, err := c.Get(ctx, "graph:b"); hit || err != nil {
		t.Errorf("Get(mismatched) = hit %v, err %v", hit, err)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("digraph G {}"))
	if h1 != Hash([]byte("digraph G {}")) {
		t.Error("Hash is not deterministic")
	}
	if h1 == Hash([]byte("digraph H {}")) {
		t.Error("different inputs share a hash")
	}
	if len(h1) != 64 {
		t.Errorf("len(Hash) = %d, want 64", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	png := k.GraphKey("abc", GraphKeyOpts{Format: "png"})
	svg := k.GraphKey("abc", GraphKeyOpts{Format: "svg"})
	if png == svg {
		t.Error("graph format does not change the key")
	}
	if !strings.HasPrefix(png, "graph:") {
		t.Errorf("GraphKey = %q", png)
	}
	if png != k.GraphKey("abc", GraphKeyOpts{Format: "png"}) {
		t.Error("GraphKey is not deterministic")
	}

	r1 := k.ReportKey("abc", ReportKeyOpts{Kind: "solution", Align: true})
	r2 := k.ReportKey("abc", ReportKeyOpts{Kind: "solution"})
	if r1 == r2 {
		t.Error("report options do not change the key")
	}
	if !strings.HasPrefix(r1, "report:") {
		t.Errorf("ReportKey = %q", r1)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "ikreport:")
	inner := NewDefaultKeyer()

	opts := GraphKeyOpts{Format: "png"}
	if got, want := scoped.GraphKey("h", opts), "ikreport:"+inner.GraphKey("h", opts); got != want {
		t.Errorf("GraphKey = %q, want %q", got, want)
	}
	ropts := ReportKeyOpts{Kind: "fk"}
	if got, want := scoped.ReportKey("h", ropts), "ikreport:"+inner.ReportKey("h", ropts); got != want {
		t.Errorf("ReportKey = %q, want %q", got, want)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	err := Retryable(ErrUnavailable)
	if !IsRetryable(err) {
		t.Error("IsRetryable(Retryable(err)) = false")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Error("wrapped error lost")
	}
	if err.Error() != ErrUnavailable.Error() {
		t.Errorf("message = %q", err.Error())
	}
	if IsRetryable(ErrUnavailable) {
		t.Error("plain error reported retryable")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	defer func(d time.Duration) { retryDelay = d }(retryDelay)
	retryDelay = time.Millisecond
	ctx := context.Background()

	tests := []struct {
		name      string
		failures  int
		retryable bool
		wantCalls int
		wantErr   bool
	}{
		{"success", 0, true, 1, false},
		{"permanent", 5, false, 1, true},
		{"recovers", 2, true, 3, false},
		{"exhausted", 5, true, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := RetryWithBackoff(ctx, func() error {
				calls++
				if calls > tt.failures {
					return nil
				}
				if tt.retryable {
					return Retryable(ErrUnavailable)
				}
				return ErrUnavailable
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error { return Retryable(ErrUnavailable) })
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNewRedisCacheUnavailable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewRedisCache() error = %v, want ErrUnavailable", err)
	}
}

func TestRedisCacheErrorIsNotMiss(t *testing.T) {
	c := NewRedisCacheFromClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))
	defer c.Close()

	_, hit, err := c.Get(context.Background(), "graph:abc")
	if err == nil || hit {
		t.Errorf("Get() = hit %v, err %v; want an error from an unreachable server", hit, err)
	}
}
