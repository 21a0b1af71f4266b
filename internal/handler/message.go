package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"raeya/familyboard/internal/model"
	"raeya/familyboard/internal/pkg/httputils"
	"raeya/familyboard/internal/service"

	"github.com/gorilla/mux"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/messages", h.createMessage).Methods("POST", "OPTIONS")
	router.HandleFunc("/messages", h.listMessages).Methods("GET", "OPTIONS")
	router.HandleFunc("/messages/{id}", h.updateMessage).Methods("PUT", "OPTIONS")
	router.HandleFunc("/messages/{id}", h.deleteMessage).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/feed", h.getFeed).Methods("GET", "OPTIONS")
}

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// files spill to disk.
const maxUploadMemory = 64 << 20

// @Summary Post message
// @Description Post a new message with optional photo/video/audio attachments
// @ID create-message
// @Accept mpfd
// @Produce json
// @Param text formData string true "Message text"
// @Param name formData string true "Author name"
// @Param photos formData file false "Photo attachments"
// @Param videos formData file false "Video attachments"
// @Param audio formData file false "Audio attachment"
// @Success 201 {object} model.Message
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) createMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	photos, closePhotos, err := formUploads(r.MultipartForm, "photos")
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "failed to read photo upload")
		return
	}
	defer closePhotos()

	videos, closeVideos, err := formUploads(r.MultipartForm, "videos")
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "failed to read video upload")
		return
	}
	defer closeVideos()

	audios, closeAudio, err := formUploads(r.MultipartForm, "audio")
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "failed to read audio upload")
		return
	}
	defer closeAudio()

	var audio *model.FileUpload
	if len(audios) > 0 {
		audio = audios[0]
	}

	sub, err := service.NormalizeSubmission(r.FormValue("text"), r.FormValue("name"), photos, videos, audio)
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.messageService.Create(r.Context(), sub)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to post message")
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, msg)
}

// @Summary List messages
// @Description Get all messages, newest first
// @ID list-messages
// @Produce json
// @Success 200 {object} []model.Message
// @Failure 500 {object} response.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List(r.Context())
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to get messages")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, messages)
}

// @Summary Get feed
// @Description Get messages filtered by author and grouped by year and month
// @ID get-feed
// @Produce json
// @Param author query string false "Author filter, defaults to All"
// @Success 200 {object} []service.FeedYear
// @Failure 500 {object} response.ErrorResponse
// @Router /feed [get]
func (h *MessageHandler) getFeed(w http.ResponseWriter, r *http.Request) {
	author := r.URL.Query().Get("author")
	if author == "" {
		author = service.AuthorAll
	}

	feed, err := h.messageService.Feed(r.Context(), author)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to build feed")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, feed)
}

// updateMessageRequest is the "payload" part of an edit form: the kept
// attachment working sets after client-side removals. Audio the client kept
// travels in existingAudio; nil means it was cleared.
type updateMessageRequest struct {
	Text           string             `json:"text"`
	Name           string             `json:"name"`
	ExistingPhotos []model.Attachment `json:"existingPhotos"`
	ExistingVideos []model.Attachment `json:"existingVideos"`
	ExistingAudio  *model.Attachment  `json:"existingAudio"`
}

// @Summary Edit message
// @Description Replace a message's text, name and attachment sets
// @ID update-message
// @Accept mpfd
// @Produce json
// @Param id path string true "Message ID"
// @Param payload formData string true "Edit payload JSON"
// @Param newPhotos formData file false "Photos to append"
// @Param newVideos formData file false "Videos to append"
// @Param newAudio formData file false "Replacement audio"
// @Success 200 {object} model.Message
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /messages/{id} [put]
func (h *MessageHandler) updateMessage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var request updateMessageRequest
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	original, err := h.messageService.Get(r.Context(), id)
	if err != nil {
		httputils.ResponseError(w, http.StatusNotFound, "message not found")
		return
	}

	newPhotos, closePhotos, err := formUploads(r.MultipartForm, "newPhotos")
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "failed to read photo upload")
		return
	}
	defer closePhotos()

	newVideos, closeVideos, err := formUploads(r.MultipartForm, "newVideos")
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "failed to read video upload")
		return
	}
	defer closeVideos()

	newAudios, closeAudio, err := formUploads(r.MultipartForm, "newAudio")
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "failed to read audio upload")
		return
	}
	defer closeAudio()

	edit := &model.EditSubmission{
		Text:           request.Text,
		Name:           request.Name,
		ExistingPhotos: request.ExistingPhotos,
		ExistingVideos: request.ExistingVideos,
		ExistingAudio:  request.ExistingAudio,
		NewPhotos:      newPhotos,
		NewVideos:      newVideos,
	}
	if len(newAudios) > 0 {
		edit.NewAudio = newAudios[0]
	}

	upd, err := service.NormalizeEdit(original, edit)
	if err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.messageService.Update(r.Context(), id, upd); err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to update message")
		return
	}

	updated, err := h.messageService.Get(r.Context(), id)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to reload message")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, updated)
}

// @Summary Delete message
// @Description Delete a message and its attachments
// @ID delete-message
// @Produce json
// @Param id path string true "Message ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /messages/{id} [delete]
func (h *MessageHandler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	msg, err := h.messageService.Get(r.Context(), id)
	if err != nil {
		httputils.ResponseError(w, http.StatusNotFound, "message not found")
		return
	}

	if err := h.messageService.Delete(r.Context(), id, msg.Refs()); err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to delete message")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// formUploads opens every file of a multipart field. The returned cleanup
// closes whatever was opened and must be deferred by the caller; the uploads
// stream straight from the open parts.
func formUploads(form *multipart.Form, field string) ([]*model.FileUpload, func(), error) {
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	if form == nil {
		return nil, cleanup, nil
	}

	var uploads []*model.FileUpload
	for _, header := range form.File[field] {
		f, err := header.Open()
		if err != nil {
			cleanup()
			return nil, func() {}, errors.New("failed to open upload: " + header.Filename)
		}
		opened = append(opened, f)

		uploads = append(uploads, &model.FileUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        f,
		})
	}

	return uploads, cleanup, nil
}
