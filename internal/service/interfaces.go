package service

import (
	"context"

	"raeya/familyboard/internal/model"
)

// AttachmentStore uploads and deletes individual media objects.
type AttachmentStore interface {
	// Upload stores the file under a key derived from the message id, an
	// upload timestamp and the original filename, scoped by kind. Failure
	// surfaces as *model.StorageWriteError.
	Upload(ctx context.Context, file *model.FileUpload, messageID, kind string) (*model.Attachment, error)

	// Remove deletes the object at path. Best-effort: failure is logged and
	// swallowed, so callers must not assume the object is gone and must not
	// block on it.
	Remove(ctx context.Context, path string)
}

// MessageService owns the message collection end to end: document writes
// composed with attachment uploads and best-effort deletes.
type MessageService interface {
	Create(ctx context.Context, sub *model.Submission) (*model.Message, error)
	Get(ctx context.Context, id string) (*model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
	Feed(ctx context.Context, author string) ([]FeedYear, error)
	Update(ctx context.Context, id string, upd *model.MessageUpdate) error
	Delete(ctx context.Context, id string, media model.MediaRefs) error
}
