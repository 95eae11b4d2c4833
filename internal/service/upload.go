package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/storage"
)

// uploadFolders maps an upload type to its storage folder. Profile images
// and resumes go to object storage; everything else stays on local disk.
var uploadFolders = map[string]struct {
	folder string
	remote bool
}{
	"profile": {"profile", true},
	"resume":  {"resume", true},
	"project": {"projects", false},
	"blog":    {"blog", false},
	"general": {"general", false},
}

// allowedMimeTypes are the content types accepted for uploads.
var allowedMimeTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// UploadService stores uploaded files, routing them to object storage or
// local disk by upload type.
type UploadService struct {
	remote  storage.BlobStore
	local   storage.BlobStore
	maxSize int64
	log     *zap.Logger
}

// NewUploadService creates a new upload service. maxSizeMB caps individual
// uploads.
func NewUploadService(remote, local storage.BlobStore, maxSizeMB int64, log *zap.Logger) *UploadService {
	return &UploadService{
		remote:  remote,
		local:   local,
		maxSize: maxSizeMB << 20,
		log:     log,
	}
}

func (s *UploadService) store(uploadType string) (storage.BlobStore, string, error) {
	dest, ok := uploadFolders[uploadType]
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown upload type %q", domain.ErrValidation, uploadType)
	}
	if dest.remote {
		return s.remote, dest.folder, nil
	}
	return s.local, dest.folder, nil
}

// Store validates and persists one uploaded file, returning its public URL.
// Filenames are generated so uploads never collide or traverse paths.
func (s *UploadService) Store(ctx context.Context, uploadType string, header *multipart.FileHeader) (*dto.UploadResponse, error) {
	dest, folder, err := s.store(uploadType)
	if err != nil {
		return nil, err
	}

	if header.Size > s.maxSize {
		return nil, fmt.Errorf("%w: file exceeds the %dMB limit", domain.ErrValidation, s.maxSize>>20)
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedMimeTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", domain.ErrValidation, contentType)
	}
	// Keep the client's extension when it matches the declared type family.
	if original := strings.ToLower(filepath.Ext(header.Filename)); original == ext ||
		(ext == ".jpg" && original == ".jpeg") {
		ext = original
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	filename := fmt.Sprintf("file-%s%s", uuid.NewString(), ext)
	key := fmt.Sprintf("%s/%s", folder, filename)

	url, err := dest.Put(ctx, key, contentType, file, header.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to store upload: %v", domain.ErrStorage, err)
	}

	s.log.Info("file uploaded",
		zap.String("type", uploadType),
		zap.String("key", key),
		zap.Int64("size", header.Size))

	return &dto.UploadResponse{
		Message:      "File uploaded successfully",
		Filename:     filename,
		OriginalName: header.Filename,
		Size:         header.Size,
		URL:          url,
		Type:         uploadType,
	}, nil
}

// Remove deletes a previously stored upload.
func (s *UploadService) Remove(ctx context.Context, uploadType, filename string) error {
	dest, folder, err := s.store(uploadType)
	if err != nil {
		return err
	}
	if filename == "" || strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: invalid filename", domain.ErrValidation)
	}

	if err := dest.Delete(ctx, fmt.Sprintf("%s/%s", folder, filename)); err != nil {
		return fmt.Errorf("%w: failed to delete upload: %v", domain.ErrStorage, err)
	}
	return nil
}
