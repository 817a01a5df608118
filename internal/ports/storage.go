package ports

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
)

// AttachmentStorage defines object storage for maintenance record attachments
// (photos, inspection reports, invoices)
type AttachmentStorage interface {
	// Schema bootstrap for the attachment metadata table
	InitializeDatabase() error

	SaveAttachment(ctx context.Context, recordID uuid.UUID, fileName string, data io.Reader, size int64) (*domain.RecordAttachment, error)
	GetAttachment(ctx context.Context, objectKey string) (io.ReadCloser, error)
	ListAttachments(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordAttachment, error)
	DeleteAttachment(ctx context.Context, objectKey string) error
}
