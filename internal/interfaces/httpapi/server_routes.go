package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerContestRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/contest", handler.GetCurrentContest)
	mux.HandleFunc("POST /v1/submissions", handler.SubmitPicks)
	mux.HandleFunc("GET /v1/contests/{contestID}/submissions", handler.ListContestSubmissions)
	mux.HandleFunc("GET /v1/contests/{contestID}/submissions/{entrantID}", handler.GetContestSubmission)
	mux.HandleFunc("GET /v1/contests/{contestID}/results", handler.GetContestResults)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/finalize", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunFinalizeSweep)))
}
