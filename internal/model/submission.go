package model

import "io"

// FileUpload is one file taken from a form submission, not yet stored.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Submission is a normalized new-message payload. Text and Name are trimmed
// and non-empty by the time a Submission exists.
type Submission struct {
	Text   string
	Name   string
	Photos []*FileUpload
	Videos []*FileUpload
	Audio  *FileUpload
}

// EditSubmission is the raw edit form: the working sets the client kept after
// removals, plus any newly picked files. ExistingAudio is nil when the client
// cleared the audio.
type EditSubmission struct {
	Text           string
	Name           string
	ExistingPhotos []Attachment
	ExistingVideos []Attachment
	ExistingAudio  *Attachment
	NewPhotos      []*FileUpload
	NewVideos      []*FileUpload
	NewAudio       *FileUpload
}

// MessageUpdate is the normalized edit delta handed to the message service.
// Photos/Videos are the authoritative kept sequences; DeletedPhotos and
// DeletedVideos name the objects whose backing blobs must be removed.
type MessageUpdate struct {
	Text   string
	Name   string
	Photos []Attachment
	Videos []Attachment

	NewPhotos []*FileUpload
	NewVideos []*FileUpload

	NewAudio     *FileUpload
	DeleteAudio  bool
	OldAudioPath string

	DeletedPhotos []Attachment
	DeletedVideos []Attachment
}

// AudioChanged reports whether the update transitions the audio reference,
// which decides whether the document write touches the audio column at all.
func (u *MessageUpdate) AudioChanged() bool {
	return u.NewAudio != nil || u.DeleteAudio
}
