package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Acme", "Acme"},
		{"ticket number with slashes", "TCK_INC_01/09/2026_URG_123456", "TCK_INC_01_09_2026_URG_123456"},
		{"spaces and accents", "Société Générale", "Soci_t__G_n_rale"},
		{"leading dots stripped", "../etc/passwd", "etc_passwd"},
		{"keeps dash underscore dot", "a-b_c.d", "a-b_c.d"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.input))
		})
	}
}

func TestNewLocalStore(t *testing.T) {
	_, err := NewLocalStore("")
	assert.Error(t, err)

	root := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(root)
	assert.NoError(t, err)

	info, err := os.Stat(store.Root())
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStore_SaveAndOpen(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	relDir := store.TicketDir("TCK_INC_01/09/2026_URG_123456")
	relPath, size, err := store.SaveFile(relDir, "error log.txt", strings.NewReader("stack trace"))
	assert.NoError(t, err)
	assert.Equal(t, int64(len("stack trace")), size)
	assert.False(t, filepath.IsAbs(relPath), "stored paths are relative to the root")

	f, err := store.Open(relPath)
	assert.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 64)
	n, _ := f.Read(buf)
	assert.Equal(t, "stack trace", string(buf[:n]))

	abs, err := store.AbsolutePath(relPath)
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}

func TestLocalStore_MissingFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Open("ticket/unknown/missing.txt")
	assert.Error(t, err)

	_, err = store.AbsolutePath("ticket/unknown/missing.txt")
	assert.Error(t, err)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	_, _, err = store.SaveFile("../outside", "x.txt", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = store.Open("../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalStore_Remove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	relPath, _, err := store.SaveFile(store.TaskDir("TSK_20260901_000001"), "spec.md", strings.NewReader("body"))
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(relPath))
	_, err = store.Open(relPath)
	assert.Error(t, err)

	// Removing twice is not an error.
	assert.NoError(t, store.Remove(relPath))
}
