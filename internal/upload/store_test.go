package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanova/curanova-site/internal/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(config.UploadConfig{
		Dir:          t.TempDir(),
		PublicPrefix: "/uploads/resumes",
		MaxBytes:     64,
	})
	require.NoError(t, err)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return store
}

func TestSave(t *testing.T) {
	store := newTestStore(t)
	candidateID := uuid.New()

	url, err := store.Save(candidateID, "application/pdf", strings.NewReader("%PDF-1.4 content"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/"+candidateID.String()+"-1700000000000.pdf", url)

	data, err := os.ReadFile(filepath.Join(store.dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 content", string(data))
}

func TestSave_ExtensionFollowsContentType(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		contentType string
		ext         string
	}{
		{"application/pdf", ".pdf"},
		{"application/msword", ".doc"},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
		{"Application/PDF; charset=binary", ".pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			url, err := store.Save(uuid.New(), tt.contentType, strings.NewReader("x"))
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(url, tt.ext), "got %s", url)
		})
	}
}

func TestSave_RejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	for _, ct := range []string{"image/png", "text/html", "", "application/zip"} {
		_, err := store.Save(uuid.New(), ct, strings.NewReader("x"))

		var typeErr *ErrUnsupportedType
		require.ErrorAs(t, err, &typeErr, "content type %q", ct)
	}

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must leave nothing on disk")
}

func TestSave_RejectsOversizedBody(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(uuid.New(), "application/pdf", strings.NewReader(strings.Repeat("a", 65)))

	var sizeErr *ErrFileTooLarge
	require.ErrorAs(t, err, &sizeErr)

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "oversized uploads must leave nothing on disk")
}

func TestSave_AcceptsBodyAtExactCap(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save(uuid.New(), "application/pdf", strings.NewReader(strings.Repeat("a", 64)))
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}
