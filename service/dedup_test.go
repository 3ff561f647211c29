package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCanonicalMap(t *testing.T) {
	byHash := map[string][]string{
		"h1": {"b.jpg", "a.jpg", "c.jpg"},
		"h2": {"z.png"},
	}

	canonical := buildCanonicalMap(byHash)

	// 每组保留字典序最小的文件，保留文件映射到自身
	require.Equal(t, "a.jpg", canonical["a.jpg"])
	require.Equal(t, "a.jpg", canonical["b.jpg"])
	require.Equal(t, "a.jpg", canonical["c.jpg"])
	require.Equal(t, "z.png", canonical["z.png"])
}

func TestRewriteImageRefs(t *testing.T) {
	canonical := map[string]string{
		"a.jpg": "a.jpg",
		"b.jpg": "a.jpg",
		"c.jpg": "c.jpg",
	}

	// 重复引用收敛成一个，保持首次出现的顺序
	refs, changed := rewriteImageRefs([]string{"b.jpg", "c.jpg", "a.jpg"}, canonical)
	require.True(t, changed)
	require.Equal(t, []string{"a.jpg", "c.jpg"}, refs)

	// 不在映射里的引用原样保留
	refs, changed = rewriteImageRefs([]string{"unknown.jpg", "b.jpg"}, canonical)
	require.True(t, changed)
	require.Equal(t, []string{"unknown.jpg", "a.jpg"}, refs)
}

func TestRewriteImageRefsIdempotent(t *testing.T) {
	canonical := map[string]string{
		"a.jpg": "a.jpg",
		"b.jpg": "a.jpg",
	}

	refs, changed := rewriteImageRefs([]string{"a.jpg"}, canonical)
	require.False(t, changed)
	require.Equal(t, []string{"a.jpg"}, refs)

	// 已经改写过的列表再跑一遍不会标记变化
	rewritten, _ := rewriteImageRefs([]string{"b.jpg", "a.jpg"}, canonical)
	again, changed := rewriteImageRefs(rewritten, canonical)
	require.False(t, changed)
	require.Equal(t, rewritten, again)
}

func TestScanAndHash(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("same-content"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("same-content"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.jpg"), []byte("other"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	hashes, skipped, err := scanAndHash(dir)
	require.NoError(t, err)
	require.Empty(t, skipped)

	// 子目录被忽略
	require.Len(t, hashes, 3)
	require.Equal(t, hashes["a.jpg"], hashes["b.jpg"])
	require.NotEqual(t, hashes["a.jpg"], hashes["c.jpg"])
}

func TestHashFileStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	h1, err := hashFile(path)
	require.NoError(t, err)
	h2, err := hashFile(path)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
	require.Len(t, h1, 64) // sha256 十六进制

	_, err = hashFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
