package accounts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mavrin/market-accounts/internal/domain"
	"github.com/mavrin/market-accounts/internal/pkg/httputil"
)

// Handler handles HTTP requests for the accounts module. It is a thin
// collaborator: it maps request bodies into the field bag and renders
// results back out; all creation semantics live in the factories.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new accounts handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers account routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/kinds", h.Kinds)
	})
}

// CreateAccountRequest represents the account creation request body.
// Fields carries the kind-dependent inputs verbatim; required keys
// inside it are enforced by the factory, not here.
type CreateAccountRequest struct {
	Kind   string         `json:"kind" validate:"required"`
	Fields map[string]any `json:"fields" validate:"required"`
}

// CreateAccountResponse represents a successful creation.
type CreateAccountResponse struct {
	User        *domain.User    `json:"user"`
	Attachments map[string]any  `json:"attachments"`
	Markers     map[string]bool `json:"markers"`
}

// Create handles POST /accounts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	result, err := h.service.CreateAccount(r.Context(), domain.AccountKind(req.Kind), Fields(req.Fields))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrUnsupportedKind, Status: http.StatusBadRequest},
		})
		return
	}

	if !result.Successful() {
		h.respondCreationFailed(w, result.Errors())
		return
	}

	httputil.Success(w, http.StatusCreated, CreateAccountResponse{
		User:        result.User(),
		Attachments: result.Attachments(),
		Markers:     result.Markers(),
	})
}

// Kinds handles GET /accounts/kinds.
func (h *Handler) Kinds(w http.ResponseWriter, r *http.Request) {
	httputil.Success(w, http.StatusOK, h.service.SupportedKinds())
}

func (h *Handler) respondCreationFailed(w http.ResponseWriter, messages []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": "account creation failed",
			"details": messages,
		},
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}
