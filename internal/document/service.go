package document

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dampeche/seadoc/internal/catalog"
	"github.com/dampeche/seadoc/internal/platform/httpx"
)

// Service owns the session document and its lifecycle. There is exactly
// one logical writer (the user); the mutex only guards against overlapping
// HTTP requests from the same session.
//
// Every mutation path funnels through markDirty so no new edit can forget
// to reset the validated flag.
type Service struct {
	mu      sync.Mutex
	invoice Invoice
	state   State

	catalogs     *catalog.Service
	molluskNames []string
	logger       *slog.Logger
}

// Snapshot bundles the document with everything derived from it. It is
// rebuilt on every read so derived values can never go stale.
type Snapshot struct {
	Invoice     Invoice `json:"invoice"`
	State       State   `json:"state"`
	View        View    `json:"view"`
	Designation string  `json:"designation"`
}

// NewService starts a session document with the catalog defaults: first
// client, first carrier, today's date.
func NewService(catalogs *catalog.Service, molluskNames []string, logger *slog.Logger) *Service {
	if len(molluskNames) == 0 {
		molluskNames = DefaultMolluskNames
	}
	inv := Invoice{
		Date:         time.Now(),
		ExchangeRate: DefaultExchangeRate,
		Incoterm:     DefaultIncoterm,
	}
	if c, ok := catalogs.FirstClient(); ok {
		inv.ClientName = c.Name
		inv.ClientAddress = c.Address
	}
	if t, ok := catalogs.FirstTransport(); ok {
		inv.Transport = t
	}
	return &Service{
		invoice:      inv,
		state:        StateDraft,
		catalogs:     catalogs,
		molluskNames: molluskNames,
		logger:       logger,
	}
}

// Snapshot returns the current document with freshly computed view and
// classification.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() Snapshot {
	products := s.catalogs.ProductIndex()
	inv := s.invoice
	inv.Items = append([]LineItem(nil), s.invoice.Items...)
	return Snapshot{
		Invoice:     inv,
		State:       s.state,
		View:        ComputeView(inv.Items, products),
		Designation: Designation(inv.Items, products, s.molluskNames),
	}
}

// HeaderUpdate carries header-field edits. Nil fields stay untouched.
// Numeric fields arrive as raw text and go through Normalize, matching the
// tolerant free-text entry of the form.
type HeaderUpdate struct {
	InvoiceNumber          *string `json:"invoiceNumber"`
	Date                   *string `json:"date"`
	ClientName             *string `json:"clientName"`
	ClientAddress          *string `json:"clientAddress"`
	Transport              *string `json:"transport"`
	Trailer                *string `json:"trailer"`
	ExchangeRate           *string `json:"exchangeRate"`
	Incoterm               *string `json:"incoterm"`
	TransportInvoiceNumber *string `json:"transportInvoiceNumber"`
	TransportAmount        *string `json:"transportAmount"`
}

// ApplyHeader mutates header fields. Selecting a client copies its catalog
// address onto the document as the per-shipment override; the copy is
// never written back to the catalog.
func (s *Service) ApplyHeader(update HeaderUpdate) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.InvoiceNumber != nil {
		s.invoice.InvoiceNumber = *update.InvoiceNumber
	}
	if update.Date != nil {
		d, err := time.Parse("2006-01-02", *update.Date)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: date must be YYYY-MM-DD", httpx.ErrValidation)
		}
		s.invoice.Date = d
	}
	if update.ClientName != nil {
		s.invoice.ClientName = *update.ClientName
		if c, ok := s.catalogs.FindClient(*update.ClientName); ok {
			s.invoice.ClientAddress = c.Address
		} else {
			s.invoice.ClientAddress = ""
		}
	}
	if update.ClientAddress != nil {
		s.invoice.ClientAddress = *update.ClientAddress
	}
	if update.Transport != nil {
		s.invoice.Transport = *update.Transport
	}
	if update.Trailer != nil {
		s.invoice.Trailer = *update.Trailer
	}
	if update.ExchangeRate != nil {
		s.invoice.ExchangeRate = Normalize(*update.ExchangeRate)
	}
	if update.Incoterm != nil {
		s.invoice.Incoterm = *update.Incoterm
	}
	if update.TransportInvoiceNumber != nil {
		s.invoice.TransportInvoiceNumber = *update.TransportInvoiceNumber
	}
	if update.TransportAmount != nil {
		s.invoice.TransportAmount = Normalize(*update.TransportAmount)
	}

	s.markDirtyLocked()
	return s.snapshotLocked(), nil
}

// AddItem appends an empty line for the given product, inheriting its
// default packaging symbol.
func (s *Service) AddItem(productID string) (Snapshot, error) {
	product, ok := s.catalogs.FindProduct(productID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: product %s", httpx.ErrNotFound, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice.Items = append(s.invoice.Items, LineItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Symbol:    product.DefaultSymbol,
	})
	s.markDirtyLocked()
	return s.snapshotLocked(), nil
}

// AppendItems adds pre-built lines, assigning IDs where missing. Used by
// the free-text parser merge; an empty slice is a no-op that keeps the
// current state.
func (s *Service) AppendItems(items []LineItem) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(items) == 0 {
		return s.snapshotLocked()
	}
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if !item.Symbol.Valid() {
			item.Symbol = catalog.SymbolCrate
		}
		s.invoice.Items = append(s.invoice.Items, item)
	}
	s.markDirtyLocked()
	return s.snapshotLocked()
}

// ItemPatch carries field-level edits to one line. Numeric fields arrive
// as raw text and are normalized.
type ItemPatch struct {
	Quantity    *string         `json:"quantity"`
	Symbol      *catalog.Symbol `json:"symbol"`
	GrossWeight *string         `json:"grossWeight"`
	NetWeight   *string         `json:"netWeight"`
	UnitPrice   *string         `json:"unitPrice"`
}

// UpdateItem applies a patch to the identified line.
func (s *Service) UpdateItem(id string, patch ItemPatch) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoice.Items {
		item := &s.invoice.Items[i]
		if item.ID != id {
			continue
		}
		if patch.Quantity != nil {
			item.Quantity = Normalize(*patch.Quantity)
		}
		if patch.Symbol != nil {
			if !patch.Symbol.Valid() {
				return Snapshot{}, fmt.Errorf("%w: symbol must be C or P", httpx.ErrValidation)
			}
			item.Symbol = *patch.Symbol
		}
		if patch.GrossWeight != nil {
			item.GrossWeight = Normalize(*patch.GrossWeight)
		}
		if patch.NetWeight != nil {
			item.NetWeight = Normalize(*patch.NetWeight)
		}
		if patch.UnitPrice != nil {
			item.UnitPrice = Normalize(*patch.UnitPrice)
		}
		s.markDirtyLocked()
		return s.snapshotLocked(), nil
	}
	return Snapshot{}, fmt.Errorf("%w: line item %s", httpx.ErrNotFound, id)
}

// RemoveItem deletes one line.
func (s *Service) RemoveItem(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.invoice.Items {
		if item.ID == id {
			s.invoice.Items = append(s.invoice.Items[:i], s.invoice.Items[i+1:]...)
			s.markDirtyLocked()
			return s.snapshotLocked(), nil
		}
	}
	return Snapshot{}, fmt.Errorf("%w: line item %s", httpx.ErrNotFound, id)
}

// Validate moves the document to VALIDATED, unlocking the CMR and
// shipping-note exports.
func (s *Service) Validate() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateValidated
	return s.snapshotLocked()
}

// Reset explicitly drops the document back to DRAFT.
func (s *Service) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateDraft
	return s.snapshotLocked()
}

func (s *Service) markDirtyLocked() {
	if s.state == StateValidated && s.logger != nil {
		s.logger.Debug("document mutated, back to draft")
	}
	s.state = StateDraft
}
