package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/pickemlab/daily-pickem/internal/platform/logging"
	"github.com/pickemlab/daily-pickem/internal/usecase"
)

type Handler struct {
	contests      *usecase.ContestService
	sweeper       *usecase.FinalizeWorker
	entryFeeCents int64
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	contests *usecase.ContestService,
	sweeper *usecase.FinalizeWorker,
	entryFeeCents int64,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		contests:      contests,
		sweeper:       sweeper,
		entryFeeCents: entryFeeCents,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetCurrentContest returns today's contest, opening it on first access.
func (h *Handler) GetCurrentContest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentContest")
	defer span.End()

	snapshot, err := h.contests.GetOrOpenContest(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get current contest failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(snapshot))
}

func (h *Handler) SubmitPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPicks")
	defer span.End()

	var req submitPicksRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.contests.SubmitPicks(ctx, req.EntrantID, req.Picks, req.Tiebreaker)
	if err != nil {
		h.logger.WarnContext(ctx, "submit picks failed", "entrant_id", req.EntrantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, submissionToDTO(item))
}

func (h *Handler) ListContestSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContestSubmissions")
	defer span.End()

	contestID := strings.TrimSpace(r.PathValue("contestID"))
	items, err := h.contests.ListSubmissions(ctx, contestID)
	if err != nil {
		h.logger.WarnContext(ctx, "list submissions failed", "contest_id", contestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]submissionDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, submissionToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, submissionListDTO{
		ContestID: contestID,
		Count:     len(dtos),
		PotCents:  h.entryFeeCents * int64(len(dtos)),
		Items:     dtos,
	})
}

func (h *Handler) GetContestSubmission(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContestSubmission")
	defer span.End()

	contestID := strings.TrimSpace(r.PathValue("contestID"))
	entrantID := strings.TrimSpace(r.PathValue("entrantID"))
	item, err := h.contests.GetSubmission(ctx, contestID, entrantID)
	if err != nil {
		h.logger.WarnContext(ctx, "get submission failed", "contest_id", contestID, "entrant_id", entrantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submissionToDTO(item))
}

func (h *Handler) GetContestResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContestResults")
	defer span.End()

	contestID := strings.TrimSpace(r.PathValue("contestID"))
	results, err := h.contests.GetResults(ctx, contestID)
	if err != nil {
		h.logger.WarnContext(ctx, "get contest results failed", "contest_id", contestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultsToDTO(results, h.entryFeeCents))
}

// RunFinalizeSweep triggers one finalization pass over unfinalized contests.
func (h *Handler) RunFinalizeSweep(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunFinalizeSweep")
	defer span.End()

	if h.sweeper == nil {
		writeError(ctx, w, fmt.Errorf("%w: finalize worker is not configured", usecase.ErrUpstreamUnavailable))
		return
	}

	result, err := h.sweeper.Sweep(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "finalize sweep failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type submitPicksRequest struct {
	EntrantID  string            `json:"entrantId" validate:"required,max=128"`
	Picks      map[string]string `json:"picks" validate:"required,min=1,dive,required"`
	Tiebreaker *int              `json:"tiebreaker" validate:"omitempty,min=0"`
}
