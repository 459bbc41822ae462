package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"article-digest/internal/domain/entity"
	"article-digest/internal/handler/http/auth"
	"article-digest/internal/handler/http/respond"
	histUC "article-digest/internal/usecase/history"
)

// HistoryHandler handles GET /history: the caller's full history in
// insertion order.
type HistoryHandler struct{ Svc *histUC.Service }

func (h HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := auth.CurrentUser(r.Context())

	chats, err := h.Svc.List(r.Context(), email)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]ChatDTO, 0, len(chats))
	for _, c := range chats {
		dtos = append(dtos, toChatDTO(c))
	}
	respond.JSON(w, http.StatusOK, map[string]any{"chats": dtos})
}

// RenameHandler handles PUT /summary/{id}: update one record's title.
type RenameHandler struct{ Svc *histUC.Service }

func (h RenameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := auth.CurrentUser(r.Context())
	id := r.PathValue("id")

	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.Rename(r.Context(), email, id, req.Title); err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr):
			respond.Error(w, http.StatusBadRequest, err)
		case errors.Is(err, entity.ErrNotFound):
			respond.Error(w, http.StatusNotFound, errors.New("chat not found"))
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "renamed"})
}

// DeleteHandler handles DELETE /summary/{id}: remove one record.
type DeleteHandler struct{ Svc *histUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := auth.CurrentUser(r.Context())
	id := r.PathValue("id")

	if err := h.Svc.Delete(r.Context(), email, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, errors.New("chat not found"))
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
