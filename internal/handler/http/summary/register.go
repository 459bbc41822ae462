package summary

import (
	"net/http"

	"article-digest/internal/handler/http/auth"
	histUC "article-digest/internal/usecase/history"
	sumUC "article-digest/internal/usecase/summarize"
)

// Register wires the summarization and history endpoints onto mux.
// All routes require a valid bearer token.
func Register(mux *http.ServeMux, sumSvc *sumUC.Service, histSvc *histUC.Service, verifier auth.TokenVerifier) {
	authz := auth.Authz(verifier)

	mux.Handle("POST /summarize", authz(SummarizeHandler{Svc: sumSvc}))
	mux.Handle("GET /history", authz(HistoryHandler{Svc: histSvc}))
	mux.Handle("PUT /summary/{id}", authz(RenameHandler{Svc: histSvc}))
	mux.Handle("DELETE /summary/{id}", authz(DeleteHandler{Svc: histSvc}))
}
