// Package http is the thin data-entry shell over the document core: it
// decodes mutations, hands them to the service, and always responds with a
// fresh snapshot so the client can never display stale derived values.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/dampeche/seadoc/internal/catalog"
	"github.com/dampeche/seadoc/internal/document"
	"github.com/dampeche/seadoc/internal/parse"
	"github.com/dampeche/seadoc/internal/platform/httpx"
)

// Handler wires the session-document endpoints.
type Handler struct {
	docs     *document.Service
	catalogs *catalog.Service
	parser   *parse.Service
}

// NewHandler constructs a Handler instance.
func NewHandler(docs *document.Service, catalogs *catalog.Service, parser *parse.Service) *Handler {
	return &Handler{docs: docs, catalogs: catalogs, parser: parser}
}

// MountRoutes registers document routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/document", h.getDocument)
	r.Put("/document/header", h.updateHeader)
	r.Post("/document/items", h.addItem)
	r.Patch("/document/items/{id}", h.updateItem)
	r.Delete("/document/items/{id}", h.removeItem)
	r.Post("/document/validate", h.validate)
	r.Post("/document/reset", h.reset)

	// The parser collaborator allows one in-flight request at a time;
	// the limiter keeps an impatient client from queueing more.
	r.With(httprate.LimitByIP(6, time.Minute)).Post("/document/parse", h.parseText)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.docs.Snapshot())
}

func (h *Handler) updateHeader(w http.ResponseWriter, r *http.Request) {
	var update document.HeaderUpdate
	if err := httpx.DecodeJSON(r, &update); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	snap, err := h.docs.ApplyHeader(update)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, snap)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	snap, err := h.docs.AddItem(req.ProductID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, snap)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var patch document.ItemPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	snap, err := h.docs.UpdateItem(chi.URLParam(r, "id"), patch)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, snap)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	snap, err := h.docs.RemoveItem(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, snap)
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.docs.Validate())
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.docs.Reset())
}

type parseRequest struct {
	Text string `json:"text"`
}

func (h *Handler) parseText(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	suggestions := h.parser.Parse(r.Context(), req.Text)
	lines := parse.MatchItems(suggestions, h.catalogs.Products())
	snap := h.docs.AppendItems(lines)
	httpx.JSON(w, http.StatusOK, snap)
}
