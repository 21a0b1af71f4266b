package service

import (
	"strings"

	"raeya/familyboard/internal/model"
)

// NormalizeSubmission validates and shapes a new-message form. Both text and
// name are trimmed; an empty result refuses the submission before any
// repository call.
func NormalizeSubmission(text, name string, photos, videos []*model.FileUpload, audio *model.FileUpload) (*model.Submission, error) {
	text = strings.TrimSpace(text)
	name = strings.TrimSpace(name)

	if text == "" {
		return nil, &model.ValidationError{Field: "text"}
	}
	if name == "" {
		return nil, &model.ValidationError{Field: "name"}
	}

	return &model.Submission{
		Text:   text,
		Name:   name,
		Photos: photos,
		Videos: videos,
		Audio:  audio,
	}, nil
}

// NormalizeEdit turns an edit form into the delta the message service
// expects. DeletedPhotos/DeletedVideos are the attachments present on the
// original message but absent from the edited working set (matched by
// storage path). The audio transition: a new file replaces (carrying the old
// path for deletion); a cleared working set with no replacement deletes; an
// untouched working set leaves the audio alone.
func NormalizeEdit(original *model.Message, edit *model.EditSubmission) (*model.MessageUpdate, error) {
	text := strings.TrimSpace(edit.Text)
	name := strings.TrimSpace(edit.Name)

	if text == "" {
		return nil, &model.ValidationError{Field: "text"}
	}
	if name == "" {
		return nil, &model.ValidationError{Field: "name"}
	}

	upd := &model.MessageUpdate{
		Text:      text,
		Name:      name,
		Photos:    edit.ExistingPhotos,
		Videos:    edit.ExistingVideos,
		NewPhotos: edit.NewPhotos,
		NewVideos: edit.NewVideos,

		DeletedPhotos: diffAttachments(original.Photos, edit.ExistingPhotos),
		DeletedVideos: diffAttachments(original.Videos, edit.ExistingVideos),
	}

	switch {
	case edit.NewAudio != nil:
		upd.NewAudio = edit.NewAudio
		if original.Audio != nil {
			upd.OldAudioPath = original.Audio.Path
		}
	case edit.ExistingAudio == nil && original.Audio != nil:
		upd.DeleteAudio = true
		upd.OldAudioPath = original.Audio.Path
	}

	return upd, nil
}

// diffAttachments returns the attachments of original that are no longer in
// kept, matched by storage path.
func diffAttachments(original, kept []model.Attachment) []model.Attachment {
	keptPaths := make(map[string]bool, len(kept))
	for _, att := range kept {
		keptPaths[att.Path] = true
	}

	var removed []model.Attachment
	for _, att := range original {
		if !keptPaths[att.Path] {
			removed = append(removed, att)
		}
	}
	return removed
}
