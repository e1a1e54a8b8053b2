package store

import (
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harshagw/docstats/internal/document"
)

func exampleSnapshot(t *testing.T) document.Snapshot {
	t.Helper()
	d, err := document.FromLines([]string{"a  bb ccc", "   it has three lines", "", "", "ACCURATE"})
	require.NoError(t, err)
	return d.Snapshot()
}

func TestEncodeDecodeSnapshot(t *testing.T) {
	snap := exampleSnapshot(t)

	decoded, err := DecodeSnapshot(EncodeSnapshot(snap))
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)

	d := document.New()
	require.NoError(t, d.Restore(decoded))
	assert.Equal(t, 8, d.WordCount())
}

func TestEncodeDecodeSnapshot_Empty(t *testing.T) {
	d, err := document.FromLines([]string{})
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(EncodeSnapshot(d.Snapshot()))
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.LineCount)
	assert.Empty(t, decoded.Text)
	assert.Empty(t, decoded.WordIndex)
}

func TestDecodeSnapshot_Corrupt(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not snappy at all"))
	assert.Error(t, err)

	_, err = DecodeSnapshot(snappy.Encode(nil, []byte("XXXX\x01")))
	assert.ErrorContains(t, err, "magic")

	valid := EncodeSnapshot(exampleSnapshot(t))
	raw, err := snappy.Decode(nil, valid)
	require.NoError(t, err)
	_, err = DecodeSnapshot(snappy.Encode(nil, raw[:len(raw)-5]))
	assert.Error(t, err, "truncated text must fail")
}

func TestKey_DependsOnContent(t *testing.T) {
	a := Key([]string{"one", "two"})
	assert.Equal(t, a, Key([]string{"one", "two"}))
	assert.NotEqual(t, a, Key([]string{"onetwo"}))
	assert.NotEqual(t, a, Key([]string{"one", "two", ""}))
}

func TestCache_PutGet(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	snap := exampleSnapshot(t)
	require.NoError(t, c.Put("k1", snap))

	got, found, err := c.Get("k1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap, got)

	_, found, err = c.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	snap := exampleSnapshot(t)

	c, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.Put("k1", snap))
	require.NoError(t, c.SetPath("/tmp/example.txt", "k1"))
	require.NoError(t, c.Close())

	c, err = Open(dir)
	require.NoError(t, err)
	defer c.Close()

	key, ok, err := c.PathKey("/tmp/example.txt")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "k1", key)

	got, found, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap.Text, got.Text)
}

func TestCache_DeleteAndKeys(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	snap := exampleSnapshot(t)
	require.NoError(t, c.Put("b", snap))
	require.NoError(t, c.Put("a", snap))
	require.NoError(t, c.SetPath("file.txt", "b"))

	keys, err := c.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, c.Delete("b"))

	keys, err = c.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys)

	_, ok, err := c.PathKey("file.txt")
	require.NoError(t, err)
	assert.False(t, ok, "path pointing at a deleted key should be removed")

	paths, err := c.Paths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}
