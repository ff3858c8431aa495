package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dj1alilou/windyluxury/internal/export"
	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"
	"github.com/dj1alilou/windyluxury/internal/ws"
	"github.com/dj1alilou/windyluxury/pkg/validator"

	"github.com/shopspring/decimal"
)

// Retention policy: the newest orders are always kept, everything beyond
// that is deleted once older than the retention age.
const (
	retainNewest = 100
	retentionAge = 24 * time.Hour
)

// DeliveryPricer resolves the delivery price for a wilaya and delivery
// type. Satisfied by the settings service.
type DeliveryPricer interface {
	GetPrice(wilaya string, deliveryType model.DeliveryType) decimal.Decimal
}

// SubmitOrderLine is one requested line of a storefront order.
type SubmitOrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// SubmitOrderRequest is the typed request schema for order placement.
// Fields are normalized (trimmed) once at this boundary.
type SubmitOrderRequest struct {
	CustomerName   string             `json:"customerName" validate:"required"`
	CustomerPhone  string             `json:"customerPhone" validate:"required,dz_phone"`
	CustomerPhone2 string             `json:"customerPhone2" validate:"omitempty,dz_phone"`
	Wilaya         string             `json:"wilaya" validate:"required"`
	Commune        string             `json:"commune" validate:"required"`
	Address        string             `json:"address"`
	DeliveryType   model.DeliveryType `json:"deliveryType"`
	Notes          string             `json:"notes"`
	Lines          []SubmitOrderLine  `json:"products" validate:"required,min=1"`
}

type OrderService interface {
	SubmitOrder(req *SubmitOrderRequest) (*model.Order, error)
	UpdateStatus(id string, status model.OrderStatus) (*model.Order, error)
	ListOrders(status string) ([]model.Order, error)
	GetOrder(id string) (*model.Order, error)
	ExportZRExpress(ids []string) (string, error)
	PruneOrders(now time.Time) (int64, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	pricer      DeliveryPricer
	hub         *ws.Hub
}

func NewOrderService(oRepo repository.OrderRepository, pRepo repository.ProductRepository, pricer DeliveryPricer, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo:   oRepo,
		productRepo: pRepo,
		pricer:      pricer,
		hub:         hub,
	}
}

// allowedTransitions defines valid status transitions. completed and
// cancelled are terminal. processing may return to pending.
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderPending:    {model.OrderProcessing, model.OrderCompleted, model.OrderCancelled},
	model.OrderProcessing: {model.OrderCompleted, model.OrderCancelled, model.OrderPending},
}

// SubmitOrder validates the request, snapshots products into order lines,
// prices the order, decrements stock and persists. The decrement is
// all-or-nothing across lines; cancellation later does NOT restock.
func (s *orderService) SubmitOrder(req *SubmitOrderRequest) (*model.Order, error) {
	normalize(req)

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	lines := make([]model.OrderLine, 0, len(req.Lines))
	subtotal := decimal.Zero
	for i, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("products[%d]: %w", i, ErrInvalidQuantity)
		}
		product, err := s.productRepo.FindByID(line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("products[%d]: %w", i, ErrProductNotFound)
			}
			return nil, fmt.Errorf("products[%d]: get product: %w", i, err)
		}
		if product.HasSizes() && line.Size == "" {
			return nil, fmt.Errorf("products[%d]: %w", i, ErrSizeRequired)
		}
		if !product.HasStock(line.Size) {
			return nil, fmt.Errorf("products[%d]: %w", i, ErrOutOfStock)
		}

		// The unit price snapshots the base price plus the picked color's
		// surcharge, if any.
		unitPrice := product.Price.Add(product.ColorSurcharge(line.Color))

		lines = append(lines, model.OrderLine{
			ProductID: product.ID,
			Title:     product.Name,
			Image:     product.DisplayImage(),
			Size:      line.Size,
			Color:     line.Color,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
		})
		subtotal = subtotal.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	deliveryPrice := s.pricer.GetPrice(req.Wilaya, req.DeliveryType)

	order := &model.Order{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerPhone2: req.CustomerPhone2,
		Wilaya:         req.Wilaya,
		Commune:        req.Commune,
		Address:        req.Address,
		DeliveryType:   req.DeliveryType,
		Lines:          lines,
		Subtotal:       subtotal,
		DeliveryPrice:  deliveryPrice,
		Total:          subtotal.Add(deliveryPrice),
		Status:         model.OrderPending,
		Notes:          req.Notes,
	}

	// Atomic conditional decrement closes the race between two concurrent
	// orders for the last unit.
	if err := s.productRepo.DecrementStock(lines); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, ErrOutOfStock
		case errors.Is(err, repository.ErrUnknownSize):
			return nil, ErrSizeRequired
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	if err := s.orderRepo.Create(order); err != nil {
		// The order was not placed; give the stock back so the catalog
		// does not drift.
		if restoreErr := s.productRepo.RestoreStock(lines); restoreErr != nil {
			err = fmt.Errorf("%w (restore stock also failed: %v)", err, restoreErr)
		}
		return nil, fmt.Errorf("persist order: %w", err)
	}

	go s.hub.OrderCreated(order)

	return order, nil
}

func (s *orderService) UpdateStatus(id string, status model.OrderStatus) (*model.Order, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if current.Status == status {
		return current, nil
	}
	if err := validateTransition(current.Status, status); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	go s.hub.OrderStatusChanged(updated)

	return updated, nil
}

func (s *orderService) ListOrders(status string) ([]model.Order, error) {
	return s.orderRepo.FindAll(status)
}

func (s *orderService) GetOrder(id string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// ExportZRExpress renders the logistics CSV. Cancelled orders are always
// excluded; when ids are given only matching orders are included.
func (s *orderService) ExportZRExpress(ids []string) (string, error) {
	orders, err := s.orderRepo.FindAll("")
	if err != nil {
		return "", err
	}

	var wanted map[string]bool
	if len(ids) > 0 {
		wanted = make(map[string]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}
	}

	var included []model.Order
	for _, order := range orders {
		if order.Status == model.OrderCancelled {
			continue
		}
		if wanted != nil && !wanted[order.ID] {
			continue
		}
		included = append(included, order)
	}

	return export.ZRExpress(included), nil
}

func (s *orderService) PruneOrders(now time.Time) (int64, error) {
	return s.orderRepo.Prune(retainNewest, now.Add(-retentionAge))
}

// --- Helpers ---

func normalize(req *SubmitOrderRequest) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.CustomerPhone2 = strings.TrimSpace(req.CustomerPhone2)
	req.Wilaya = strings.TrimSpace(req.Wilaya)
	req.Commune = strings.TrimSpace(req.Commune)
	req.Address = strings.TrimSpace(req.Address)
}

// validateRequest maps the first struct validation failure onto the error
// taxonomy.
func validateRequest(req *SubmitOrderRequest) error {
	errs := validator.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	switch {
	case strings.HasSuffix(first.FailedField, ".CustomerName"):
		return ErrNameRequired
	case strings.HasSuffix(first.FailedField, ".CustomerPhone"),
		strings.HasSuffix(first.FailedField, ".CustomerPhone2"):
		return ErrInvalidPhone
	case strings.HasSuffix(first.FailedField, ".Wilaya"):
		return ErrWilayaRequired
	case strings.HasSuffix(first.FailedField, ".Commune"):
		return ErrCommuneRequired
	case strings.HasSuffix(first.FailedField, ".Lines"):
		return ErrEmptyOrder
	}
	return fmt.Errorf("validation failed: field %q on tag %q", first.FailedField, first.Tag)
}

func isValidStatus(status model.OrderStatus) bool {
	switch status {
	case model.OrderPending, model.OrderProcessing, model.OrderCompleted, model.OrderCancelled:
		return true
	}
	return false
}

func validateTransition(current, next model.OrderStatus) error {
	for _, allowed := range allowedTransitions[current] {
		if allowed == next {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot move %s order to %s", ErrStatusConflict, current, next)
}
