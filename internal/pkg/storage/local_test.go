package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/shoponline-backend/internal/config"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
)

func testStore(t *testing.T) *LocalImageStore {
	t.Helper()
	cfg := &config.Config{}
	cfg.Upload.LocalPath = t.TempDir()
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedExtensions = []string{"png", "jpg", "jpeg"}
	return NewLocalImageStore(cfg)
}

// multipartFile builds a real multipart.File/FileHeader pair the way gin
// would hand it to a handler.
func multipartFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/addProduct", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	return file, header
}

func TestSaveAcceptsAllowedExtensions(t *testing.T) {
	store := testStore(t)

	for _, name := range []string{"shoe.png", "shirt.jpg", "bag.JPEG"} {
		file, header := multipartFile(t, name, []byte("imagebytes"))
		path, err := store.Save(file, header)
		require.NoError(t, err, name)

		saved, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("imagebytes"), saved)
	}
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store := testStore(t)

	file, header := multipartFile(t, "malware.exe", []byte("nope"))
	_, err := store.Save(file, header)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := testStore(t)
	store.config.Upload.MaxSize = 4

	file, header := multipartFile(t, "big.png", []byte("more than four bytes"))
	_, err := store.Save(file, header)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := testStore(t)

	f1, h1 := multipartFile(t, "a.png", []byte("one"))
	f2, h2 := multipartFile(t, "a.png", []byte("two"))

	p1, err := store.Save(f1, h1)
	require.NoError(t, err)
	p2, err := store.Save(f2, h2)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}
