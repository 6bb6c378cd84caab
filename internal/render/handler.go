package render

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dampeche/seadoc/internal/document"
	"github.com/dampeche/seadoc/internal/layout"
	"github.com/dampeche/seadoc/internal/platform/httpx"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler exposes the four document exports plus the XLSX side artifact.
type Handler struct {
	logger   *slog.Logger
	exporter *Exporter
	docs     *document.Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, exporter *Exporter, docs *document.Service) *Handler {
	return &Handler{logger: logger, exporter: exporter, docs: docs}
}

// MountRoutes registers export routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/export/invoice", h.exportInvoice)
	r.Get("/export/invoice.xlsx", h.exportInvoiceWorkbook)
	r.Get("/export/cmr", h.exportCMR)
	r.Get("/export/shipping-note", h.exportShippingNote)
	r.Get("/export/transport-invoice", h.exportTransportInvoice)
}

func (h *Handler) exportInvoice(w http.ResponseWriter, r *http.Request) {
	payload := layout.BuildInvoice(h.docs.Snapshot())
	pdf, err := h.exporter.Render(r.Context(), "invoice.html", payload)
	if err != nil {
		h.fail(w, "invoice", err)
		return
	}
	httpx.Attachment(w, payload.Filename(), pdfContentType, pdf)
}

func (h *Handler) exportInvoiceWorkbook(w http.ResponseWriter, r *http.Request) {
	payload := layout.BuildInvoice(h.docs.Snapshot())
	book, err := InvoiceWorkbook(payload)
	if err != nil {
		h.fail(w, "invoice workbook", err)
		return
	}
	httpx.Attachment(w, "Facture_"+draftBase(payload.Number)+".xlsx", xlsxContentType, book)
}

func (h *Handler) exportCMR(w http.ResponseWriter, r *http.Request) {
	payload, err := layout.BuildCMR(h.docs.Snapshot())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	pdf, err := h.exporter.Render(r.Context(), "cmr.html", payload)
	if err != nil {
		h.fail(w, "cmr", err)
		return
	}
	httpx.Attachment(w, payload.Filename(), pdfContentType, pdf)
}

func (h *Handler) exportShippingNote(w http.ResponseWriter, r *http.Request) {
	payload, err := layout.BuildShippingNote(h.docs.Snapshot())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	pdf, err := h.exporter.Render(r.Context(), "shipping_note.html", payload)
	if err != nil {
		h.fail(w, "shipping note", err)
		return
	}
	httpx.Attachment(w, payload.Filename(), pdfContentType, pdf)
}

func (h *Handler) exportTransportInvoice(w http.ResponseWriter, r *http.Request) {
	payload := layout.BuildTransportInvoice(h.docs.Snapshot())
	pdf, err := h.exporter.Render(r.Context(), "transport_invoice.html", payload)
	if err != nil {
		h.fail(w, "transport invoice", err)
		return
	}
	httpx.Attachment(w, payload.Filename(), pdfContentType, pdf)
}

func (h *Handler) fail(w http.ResponseWriter, doc string, err error) {
	if h.logger != nil {
		h.logger.Error("document export", slog.String("document", doc), slog.Any("error", err))
	}
	httpx.Problem(w, http.StatusBadGateway, "Export Failed", "rendering backend unavailable")
}

func draftBase(number string) string {
	if number == "" {
		return "Draft"
	}
	return number
}
