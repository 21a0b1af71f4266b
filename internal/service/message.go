package service

import (
	"context"
	"log"
	"time"

	"raeya/familyboard/internal/model"
	"raeya/familyboard/internal/repository"
)

type messageService struct {
	repo  repository.MessageRepository
	store AttachmentStore
	cache repository.FeedCacheRepository
}

func NewMessageService(
	repo repository.MessageRepository,
	store AttachmentStore,
	cache repository.FeedCacheRepository,
) MessageService {
	return &messageService{
		repo:  repo,
		store: store,
		cache: cache,
	}
}

// Create writes the document first, then uploads media one file at a time and
// patches the document with the resulting attachment metadata. An upload
// failure propagates and leaves the document with whatever media succeeded;
// there is no rollback.
func (s *messageService) Create(ctx context.Context, sub *model.Submission) (*model.Message, error) {
	now := time.Now()
	msg := &model.Message{
		Text:      sub.Text,
		Name:      sub.Name,
		Date:      now.Truncate(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, err
	}

	hasMedia := false

	for _, photo := range sub.Photos {
		att, err := s.store.Upload(ctx, photo, msg.ID, model.KindPhoto)
		if err != nil {
			return nil, err
		}
		msg.Photos = append(msg.Photos, *att)
		hasMedia = true
	}

	for _, video := range sub.Videos {
		att, err := s.store.Upload(ctx, video, msg.ID, model.KindVideo)
		if err != nil {
			return nil, err
		}
		msg.Videos = append(msg.Videos, *att)
		hasMedia = true
	}

	if sub.Audio != nil {
		att, err := s.store.Upload(ctx, sub.Audio, msg.ID, model.KindAudio)
		if err != nil {
			return nil, err
		}
		msg.Audio = att
		hasMedia = true
	}

	if hasMedia {
		if err := s.repo.PatchMedia(ctx, msg.ID, msg.Photos, msg.Videos, msg.Audio); err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx)

	return msg, nil
}

func (s *messageService) Get(ctx context.Context, id string) (*model.Message, error) {
	return s.repo.Get(ctx, id)
}

// List returns the full collection ordered by creation time descending,
// serving the cached snapshot when it is still valid.
func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	if cached, ok, err := s.cache.GetMessages(ctx); err != nil {
		log.Printf("feed cache read failed: %v", err)
	} else if ok {
		return cached, nil
	}

	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetMessages(ctx, messages); err != nil {
		log.Printf("feed cache write failed: %v", err)
	}

	return messages, nil
}

// Feed projects the collection into the grouped display structure.
func (s *messageService) Feed(ctx context.Context, author string) ([]FeedYear, error) {
	messages, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return ProjectFeed(messages, author), nil
}

// Update applies an edit delta: upload new media, delete a replaced or
// removed audio object, delete removed photo/video objects, then write the
// merged document. Photos/Videos fully replace the stored sequences.
func (s *messageService) Update(ctx context.Context, id string, upd *model.MessageUpdate) error {
	// The kept sequences are authoritative; nil normalizes to empty so the
	// stored column always holds a list.
	photos := upd.Photos
	if photos == nil {
		photos = []model.Attachment{}
	}
	videos := upd.Videos
	if videos == nil {
		videos = []model.Attachment{}
	}

	for _, photo := range upd.NewPhotos {
		att, err := s.store.Upload(ctx, photo, id, model.KindPhoto)
		if err != nil {
			return err
		}
		photos = append(photos, *att)
	}

	for _, video := range upd.NewVideos {
		att, err := s.store.Upload(ctx, video, id, model.KindVideo)
		if err != nil {
			return err
		}
		videos = append(videos, *att)
	}

	var audio *model.Attachment
	if upd.NewAudio != nil {
		att, err := s.store.Upload(ctx, upd.NewAudio, id, model.KindAudio)
		if err != nil {
			return err
		}
		audio = att
	}

	if upd.AudioChanged() && upd.OldAudioPath != "" {
		s.store.Remove(ctx, upd.OldAudioPath)
	}

	for _, photo := range upd.DeletedPhotos {
		if photo.Path != "" {
			s.store.Remove(ctx, photo.Path)
		}
	}

	for _, video := range upd.DeletedVideos {
		if video.Path != "" {
			s.store.Remove(ctx, video.Path)
		}
	}

	err := s.repo.PatchDocument(ctx, id, repository.DocumentPatch{
		Text:         upd.Text,
		Name:         upd.Name,
		Photos:       photos,
		Videos:       videos,
		Audio:        audio,
		AudioChanged: upd.AudioChanged(),
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

// Delete removes every referenced attachment object best-effort, then deletes
// the document. A failed blob delete never blocks the document delete.
func (s *messageService) Delete(ctx context.Context, id string, media model.MediaRefs) error {
	for _, photo := range media.Photos {
		if photo.Path != "" {
			s.store.Remove(ctx, photo.Path)
		}
	}

	for _, video := range media.Videos {
		if video.Path != "" {
			s.store.Remove(ctx, video.Path)
		}
	}

	if media.Audio != nil && media.Audio.Path != "" {
		s.store.Remove(ctx, media.Audio.Path)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *messageService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("feed cache invalidation failed: %v", err)
	}
}
