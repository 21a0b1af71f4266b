// Package state models the board's presentation state as an explicit value
// passed through pure transition functions instead of ambient globals.
package state

import "raeya/familyboard/internal/model"

// AppState is the full presentation state: the collection snapshot, the
// selected author tab, the message being edited (empty when none), plus the
// dark-mode and submit-in-progress flags.
type AppState struct {
	Messages       []model.Message
	SelectedAuthor string
	EditTarget     string
	DarkMode       bool
	Submitting     bool
}

// New returns the initial state: everything selected, nothing in flight.
func New() AppState {
	return AppState{SelectedAuthor: "All"}
}

// SelectAuthor switches the active author tab.
func SelectAuthor(s AppState, author string) AppState {
	s.SelectedAuthor = author
	return s
}

// SetMessages replaces the snapshot wholesale, as done after each successful
// write.
func SetMessages(s AppState, messages []model.Message) AppState {
	s.Messages = messages
	return s
}

// PrependMessage optimistically puts a freshly created message at the front
// of the snapshot without refetching.
func PrependMessage(s AppState, msg model.Message) AppState {
	messages := make([]model.Message, 0, len(s.Messages)+1)
	messages = append(messages, msg)
	s.Messages = append(messages, s.Messages...)
	return s
}

// BeginSubmit marks a submission in flight. The second result is false when
// one already is, guarding against duplicate submits from repeated clicks.
func BeginSubmit(s AppState) (AppState, bool) {
	if s.Submitting {
		return s, false
	}
	s.Submitting = true
	return s, true
}

// EndSubmit clears the in-flight flag once the operation completed or failed.
func EndSubmit(s AppState) AppState {
	s.Submitting = false
	return s
}

// OpenEdit targets a message for editing.
func OpenEdit(s AppState, id string) AppState {
	s.EditTarget = id
	return s
}

// CloseEdit handles a close request from the edit surface.
func CloseEdit(s AppState) AppState {
	s.EditTarget = ""
	return s
}

// ToggleDarkMode flips the theme flag.
func ToggleDarkMode(s AppState) AppState {
	s.DarkMode = !s.DarkMode
	return s
}
