package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
)

// MockBlobStore is a mock implementation of storage.BlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, body, size)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// fileHeader builds a real multipart.FileHeader by round-tripping a form.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	return form.File["file"][0]
}

func newUploadService(remote, local *MockBlobStore) *UploadService {
	return NewUploadService(remote, local, 5, zap.NewNop())
}

func TestUploadService_Store_RoutesResumeToRemote(t *testing.T) {
	remote := new(MockBlobStore)
	local := new(MockBlobStore)
	svc := newUploadService(remote, local)

	remote.On("Put", mock.Anything, mock.AnythingOfType("string"), "application/pdf", mock.Anything, mock.Anything).
		Return("https://bucket.example.com/resume/file-x.pdf", nil)

	header := fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF-1.7"))
	resp, err := svc.Store(context.Background(), "resume", header)

	assert.NoError(t, err)
	assert.Equal(t, "cv.pdf", resp.OriginalName)
	assert.Equal(t, "resume", resp.Type)
	assert.Equal(t, "https://bucket.example.com/resume/file-x.pdf", resp.URL)

	key := remote.Calls[0].Arguments.String(1)
	assert.Regexp(t, `^resume/file-[0-9a-f-]+\.pdf$`, key)
	local.AssertNotCalled(t, "Put")
}

func TestUploadService_Store_RoutesProjectToLocal(t *testing.T) {
	remote := new(MockBlobStore)
	local := new(MockBlobStore)
	svc := newUploadService(remote, local)

	local.On("Put", mock.Anything, mock.AnythingOfType("string"), "image/png", mock.Anything, mock.Anything).
		Return("/uploads/projects/file-y.png", nil)

	header := fileHeader(t, "shot.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	resp, err := svc.Store(context.Background(), "project", header)

	assert.NoError(t, err)
	assert.Equal(t, "/uploads/projects/file-y.png", resp.URL)
	remote.AssertNotCalled(t, "Put")
}

func TestUploadService_Store_UnknownType(t *testing.T) {
	svc := newUploadService(new(MockBlobStore), new(MockBlobStore))

	header := fileHeader(t, "a.png", "image/png", []byte{1})
	_, err := svc.Store(context.Background(), "malware", header)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUploadService_Store_UnsupportedContentType(t *testing.T) {
	svc := newUploadService(new(MockBlobStore), new(MockBlobStore))

	header := fileHeader(t, "run.sh", "application/x-sh", []byte("#!/bin/sh"))
	_, err := svc.Store(context.Background(), "general", header)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUploadService_Store_TooLarge(t *testing.T) {
	remote := new(MockBlobStore)
	local := new(MockBlobStore)
	svc := NewUploadService(remote, local, 1, zap.NewNop()) // 1MB cap

	header := fileHeader(t, "big.png", "image/png", bytes.Repeat([]byte{0}, 2<<20))
	_, err := svc.Store(context.Background(), "general", header)

	assert.ErrorIs(t, err, domain.ErrValidation)
	local.AssertNotCalled(t, "Put")
}

func TestUploadService_Remove_RejectsPathTraversal(t *testing.T) {
	svc := newUploadService(new(MockBlobStore), new(MockBlobStore))

	err := svc.Remove(context.Background(), "general", "../../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.Remove(context.Background(), "general", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUploadService_Remove_DeletesFromMatchingStore(t *testing.T) {
	remote := new(MockBlobStore)
	local := new(MockBlobStore)
	svc := newUploadService(remote, local)

	local.On("Delete", mock.Anything, "blog/file-z.webp").Return(nil)

	err := svc.Remove(context.Background(), "blog", "file-z.webp")

	assert.NoError(t, err)
	local.AssertExpectations(t)
	remote.AssertNotCalled(t, "Delete")
}
