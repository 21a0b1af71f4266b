package model

import "time"

const (
	KindPhoto = "photo"
	KindVideo = "video"
	KindAudio = "audio"
)

// Attachment describes one uploaded media object. Path is the storage-internal
// key and is required to delete the object later; URL is the resolvable
// download location shown to clients.
type Attachment struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Message is one board entry. Media columns are stored as JSON alongside the
// document so a message and its attachment metadata always travel together.
type Message struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	Text      string       `json:"text"`
	Name      string       `json:"name"`
	Date      time.Time    `gorm:"type:date" json:"date"`
	Photos    []Attachment `gorm:"serializer:json" json:"photos"`
	Videos    []Attachment `gorm:"serializer:json" json:"videos"`
	Audio     *Attachment  `gorm:"serializer:json" json:"audio,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// MediaRefs collects every attachment reference of a message for the delete
// cascade.
type MediaRefs struct {
	Photos []Attachment
	Videos []Attachment
	Audio  *Attachment
}

// Refs returns the message's attachment references.
func (m *Message) Refs() MediaRefs {
	return MediaRefs{
		Photos: m.Photos,
		Videos: m.Videos,
		Audio:  m.Audio,
	}
}
