package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/FahadAljabr/arms/internal/domain"
)

// AttachmentStorage stores maintenance record attachments in MinIO with
// metadata tracked in PostgreSQL
type AttachmentStorage struct {
	db          *sql.DB
	minioClient *minio.Client
	bucketName  string
}

// NewAttachmentStorage creates a new AttachmentStorage instance
func NewAttachmentStorage(db *sql.DB, minioEndpoint, minioAccessKey, minioSecretKey, minioBucket string, useSSL bool) (*AttachmentStorage, error) {
	// MinIO client initialization
	minioClient, err := minio.New(minioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioAccessKey, minioSecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	// Make sure the bucket exists, creating it on first run
	exists, err := minioClient.BucketExists(context.Background(), minioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if !exists {
		err = minioClient.MakeBucket(context.Background(), minioBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &AttachmentStorage{
		db:          db,
		minioClient: minioClient,
		bucketName:  minioBucket,
	}, nil
}

// InitializeDatabase creates the attachment metadata table
func (s *AttachmentStorage) InitializeDatabase() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS record_attachments (
			object_key TEXT PRIMARY KEY,
			record_id UUID NOT NULL,
			file_name TEXT NOT NULL,
			size_bytes BIGINT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create record_attachments table: %w", err)
	}

	_, err = s.db.Exec(`
		CREATE INDEX IF NOT EXISTS record_attachments_record_idx
		ON record_attachments (record_id)
	`)
	if err != nil {
		return fmt.Errorf("failed to create record attachment index: %w", err)
	}

	return nil
}

// SaveAttachment stores the file in MinIO and registers its metadata
func (s *AttachmentStorage) SaveAttachment(ctx context.Context, recordID uuid.UUID, fileName string, data io.Reader, size int64) (*domain.RecordAttachment, error) {
	// Timestamped object key keeps repeated uploads of the same file apart
	uploadedAt := time.Now()
	objectKey := fmt.Sprintf("%s/%s-%s", recordID, uploadedAt.Format("20060102-150405.999"), fileName)

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectKey, data, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"record-id":    recordID.String(),
			"file-name":    fileName,
			"created-time": uploadedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	attachment := &domain.RecordAttachment{
		RecordID:   recordID,
		ObjectKey:  objectKey,
		FileName:   fileName,
		SizeBytes:  size,
		UploadedAt: uploadedAt,
	}

	query := `
		INSERT INTO record_attachments (object_key, record_id, file_name, size_bytes, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(ctx, query, attachment.ObjectKey, attachment.RecordID, attachment.FileName, attachment.SizeBytes, attachment.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to register attachment metadata: %w", err)
	}

	return attachment, nil
}

// GetAttachment streams an attachment back from MinIO
func (s *AttachmentStorage) GetAttachment(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	obj, err := s.minioClient.GetObject(ctx, s.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return obj, nil
}

// ListAttachments returns the attachments registered for a maintenance record
func (s *AttachmentStorage) ListAttachments(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordAttachment, error) {
	query := `
		SELECT object_key, record_id, file_name, size_bytes, uploaded_at
		FROM record_attachments
		WHERE record_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []*domain.RecordAttachment
	for rows.Next() {
		var a domain.RecordAttachment
		if err := rows.Scan(&a.ObjectKey, &a.RecordID, &a.FileName, &a.SizeBytes, &a.UploadedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attachments, nil
}

// DeleteAttachment removes the object and its metadata
func (s *AttachmentStorage) DeleteAttachment(ctx context.Context, objectKey string) error {
	if err := s.minioClient.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM record_attachments WHERE object_key = $1`, objectKey)
	if err != nil {
		return fmt.Errorf("failed to delete attachment metadata: %w", err)
	}

	return nil
}
