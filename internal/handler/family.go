package handler

import (
	"net/http"

	"raeya/familyboard/internal/model"
	"raeya/familyboard/internal/pkg/httputils"

	"github.com/gorilla/mux"
)

type FamilyHandler struct{}

func NewFamilyHandler() *FamilyHandler {
	return &FamilyHandler{}
}

func (h *FamilyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/family", h.getFamily).Methods("GET", "OPTIONS")
}

// @Summary Family roster
// @Description Get the author tabs, or autocomplete matches when q is set
// @ID get-family
// @Produce json
// @Param q query string false "Autocomplete prompt"
// @Success 200 {object} []string
// @Router /family [get]
func (h *FamilyHandler) getFamily(w http.ResponseWriter, r *http.Request) {
	if prompt := r.URL.Query().Get("q"); prompt != "" {
		httputils.ResponseJSON(w, http.StatusOK, model.MatchRoster(prompt))
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, model.RosterTabs())
}
