package catalog

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dampeche/seadoc/internal/platform/httpx"
)

// Handler exposes the reference catalogs over HTTP.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

// MountRoutes registers catalog routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/catalog/products", h.listProducts)
	r.Get("/catalog/products/search", h.searchProducts)
	r.Post("/catalog/products", h.createProduct)
	r.Get("/catalog/clients", h.listClients)
	r.Post("/catalog/clients", h.createClient)
	r.Get("/catalog/transports", h.listTransports)
	r.Post("/catalog/transports", h.createTransport)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Products())
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	results := h.service.SearchProducts(r.URL.Query().Get("q"))
	if results == nil {
		results = []Product{}
	}
	httpx.JSON(w, http.StatusOK, results)
}

type createProductRequest struct {
	Name          string `json:"name" validate:"required"`
	LatinName     string `json:"latinName"`
	DefaultSymbol Symbol `json:"defaultSymbol" validate:"omitempty,oneof=C P"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return
	}
	product, err := h.service.AddProduct(r.Context(), req.Name, req.LatinName, req.DefaultSymbol)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Clients())
}

type createClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return
	}
	client, err := h.service.AddClient(r.Context(), req.Name, req.Address)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

func (h *Handler) listTransports(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Transports())
}

type createTransportRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) createTransport(w http.ResponseWriter, r *http.Request) {
	var req createTransportRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return
	}
	name, err := h.service.AddTransport(r.Context(), req.Name)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"name": name})
}
