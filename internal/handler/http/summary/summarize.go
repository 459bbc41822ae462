package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"article-digest/internal/domain/entity"
	"article-digest/internal/handler/http/auth"
	"article-digest/internal/handler/http/respond"
	sumUC "article-digest/internal/usecase/summarize"
)

// SummarizeHandler handles POST /summarize: fetch the article at the given
// URL, summarize it, and upsert the result into the caller's history.
type SummarizeHandler struct{ Svc *sumUC.Service }

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := auth.CurrentUser(r.Context())

	var req struct {
		URL      string       `json:"url"`
		ChatID   string       `json:"chat_id"`
		Messages []MessageDTO `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	result, err := h.Svc.Summarize(r.Context(), email, req.URL, req.ChatID, toMessages(req.Messages))
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			respond.Error(w, http.StatusBadRequest, err)
			return
		}
		switch {
		case errors.Is(err, sumUC.ErrInvalidURL),
			errors.Is(err, sumUC.ErrTooManyRedirects),
			errors.Is(err, sumUC.ErrBodyTooLarge):
			respond.Error(w, http.StatusBadRequest, err)
		case errors.Is(err, sumUC.ErrEmptyArticle),
			errors.Is(err, sumUC.ErrUnreadableContent):
			respond.Error(w, http.StatusInternalServerError, errors.New("could not extract article content"))
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"summary": result.Summary,
		"title":   result.Title,
		"chat_id": result.ChatID,
		"images":  result.Images,
	})
}
