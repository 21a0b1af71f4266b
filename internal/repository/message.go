package repository

import (
	"context"
	"time"

	"raeya/familyboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository is the document-collection contract: insert with a
// generated id, patch by id, full read ordered by creation time descending,
// delete by id.
type MessageRepository interface {
	Insert(ctx context.Context, msg *model.Message) error
	Get(ctx context.Context, id string) (*model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
	PatchMedia(ctx context.Context, id string, photos, videos []model.Attachment, audio *model.Attachment) error
	PatchDocument(ctx context.Context, id string, patch DocumentPatch) error
	Delete(ctx context.Context, id string) error
}

// DocumentPatch is the merged document written by an edit. Photos and Videos
// fully replace the stored sequences. Audio is only written when AudioChanged
// is set, so an untouched audio reference survives the edit.
type DocumentPatch struct {
	Text         string
	Name         string
	Photos       []model.Attachment
	Videos       []model.Attachment
	Audio        *model.Attachment
	AudioChanged bool
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Insert(ctx context.Context, msg *model.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return &model.RepositoryWriteError{Op: "create", Err: err}
	}
	return nil
}

func (r *messageRepository) Get(ctx context.Context, id string) (*model.Message, error) {
	var msg model.Message
	if err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) List(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *messageRepository) PatchMedia(ctx context.Context, id string, photos, videos []model.Attachment, audio *model.Attachment) error {
	err := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("id = ?", id).
		Select("photos", "videos", "audio", "updated_at").
		Updates(&model.Message{
			Photos:    photos,
			Videos:    videos,
			Audio:     audio,
			UpdatedAt: time.Now(),
		}).Error
	if err != nil {
		return &model.RepositoryWriteError{Op: "update", Err: err}
	}
	return nil
}

func (r *messageRepository) PatchDocument(ctx context.Context, id string, patch DocumentPatch) error {
	columns := []string{"text", "name", "photos", "videos", "updated_at"}
	if patch.AudioChanged {
		columns = append(columns, "audio")
	}

	err := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("id = ?", id).
		Select(columns).
		Updates(&model.Message{
			Text:      patch.Text,
			Name:      patch.Name,
			Photos:    patch.Photos,
			Videos:    patch.Videos,
			Audio:     patch.Audio,
			UpdatedAt: time.Now(),
		}).Error
	if err != nil {
		return &model.RepositoryWriteError{Op: "update", Err: err}
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Message{}).Error
	if err != nil {
		return &model.RepositoryWriteError{Op: "delete", Err: err}
	}
	return nil
}
