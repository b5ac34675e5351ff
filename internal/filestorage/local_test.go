package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testStoragePath = "./test_uploads_temp"

func setupLocalStorage(t *testing.T) (*LocalStorage, func()) {
	storage, err := NewLocalStorage(testStoragePath, "http://localhost:8080/uploads", zap.NewNop())
	require.NoError(t, err, "Failed to create LocalStorage")
	require.NotNil(t, storage)

	cleanup := func() {
		if err := os.RemoveAll(testStoragePath); err != nil {
			t.Logf("Warning: Failed to remove test storage path %s: %v", testStoragePath, err)
		}
	}
	return storage, cleanup
}

// Helper to create a valid multipart.FileHeader that can be opened,
// simulating how Gin hands uploaded files to handlers.
func newTestFileHeader(t *testing.T, fieldname, filename, content, contentType string) *multipart.FileHeader {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldname, filename))
	if contentType != "" {
		partHeader.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)

	files := form.File[fieldname]
	require.NotEmpty(t, files, "No files found for fieldname %s", fieldname)
	return files[0]
}

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1717171717171)

	key := ObjectKey("images/genres/", "cover.png", now)
	assert.Equal(t, "images/genres/1717171717171_cover.png", key)

	// Directory components of the client-supplied filename are stripped.
	key = ObjectKey("songs/audio/", "../../../etc/track.mp3", now)
	assert.Equal(t, "songs/audio/"+strconv.FormatInt(now.UnixMilli(), 10)+"_track.mp3", key)
}

func TestLocalStorage_Upload_Success(t *testing.T) {
	storage, cleanup := setupLocalStorage(t)
	defer cleanup()

	content := "This is a test image file."
	url, err := storage.Upload(context.Background(), "images/genres/123_test.jpg", strings.NewReader(content), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/images/genres/123_test.jpg", url)

	fullPath := filepath.Join(testStoragePath, "images", "genres", "123_test.jpg")
	fileContent, err := os.ReadFile(fullPath)
	require.NoError(t, err, "File should exist at the stored path")
	assert.Equal(t, content, string(fileContent))
}

func TestLocalStorage_Upload_PathTraversal(t *testing.T) {
	storage, cleanup := setupLocalStorage(t)
	defer cleanup()

	_, err := storage.Upload(context.Background(), "../outside.jpg", strings.NewReader("x"), "image/jpeg")
	require.Error(t, err, "Should not be able to write files outside the storage path")
	assert.Contains(t, err.Error(), "invalid storage key")
}

func TestLocalStorage_Delete_Success(t *testing.T) {
	storage, cleanup := setupLocalStorage(t)
	defer cleanup()

	subDir := filepath.Join(testStoragePath, "delete_test")
	require.NoError(t, os.MkdirAll(subDir, os.ModePerm))
	target := filepath.Join(subDir, "song.mp3")
	require.NoError(t, os.WriteFile(target, []byte("audio"), 0644))

	err := storage.Delete(context.Background(), "delete_test/song.mp3")
	require.NoError(t, err)

	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err), "File should not exist after deletion")
}

func TestLocalStorage_Delete_NonExistent(t *testing.T) {
	storage, cleanup := setupLocalStorage(t)
	defer cleanup()

	err := storage.Delete(context.Background(), "missing_dir/missing.mp3")
	assert.NoError(t, err, "Deleting a non-existent file should not error")
}

func TestLocalStorage_Delete_PathTraversal(t *testing.T) {
	storage, cleanup := setupLocalStorage(t)
	defer cleanup()

	dummyFilePath := filepath.Join(testStoragePath, "../dummy_outside.txt")
	require.NoError(t, os.WriteFile(dummyFilePath, []byte("dummy"), 0644))
	defer os.Remove(dummyFilePath)

	err := storage.Delete(context.Background(), "../../dummy_outside.txt")
	require.Error(t, err, "Should not be able to delete files outside storage path")
	assert.Contains(t, err.Error(), "invalid file path for deletion")

	_, statErr := os.Stat(dummyFilePath)
	assert.NoError(t, statErr, "External dummy file should still exist.")
}

func TestSaveMultipart(t *testing.T) {
	storage, cleanup := setupLocalStorage(t)
	defer cleanup()

	fh := newTestFileHeader(t, "image", "cover art.png", "png content", "image/png")

	url, err := SaveMultipart(context.Background(), storage, "images/artists/uid-1/", fh)
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/images/artists/uid-1/")
	assert.True(t, strings.HasSuffix(url, "_cover art.png"), "URL should keep the original filename suffix")
}

func TestSaveMultipart_NilHeader(t *testing.T) {
	storage, cleanup := setupLocalStorage(t)
	defer cleanup()

	_, err := SaveMultipart(context.Background(), storage, "images/", nil)
	assert.EqualError(t, err, "fileHeader cannot be nil")
}
