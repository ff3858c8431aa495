package filestore

import (
	"sort"
	"time"

	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"

	"github.com/shopspring/decimal"
)

const ordersFile = "orders.json"

type orderStore struct {
	s *Store
}

func (o *orderStore) load() ([]model.Order, error) {
	var orders []model.Order
	if err := o.s.read(ordersFile, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *orderStore) Create(order *model.Order) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	orders, err := o.load()
	if err != nil {
		return err
	}
	now := time.Now()
	if order.ID == "" {
		order.ID = model.NewID()
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	orders = append(orders, *order)
	return o.s.write(ordersFile, orders)
}

func (o *orderStore) FindAll(status string) ([]model.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	orders, err := o.load()
	if err != nil {
		return nil, err
	}
	var filtered []model.Order
	for _, order := range orders {
		if status == "" || string(order.Status) == status {
			filtered = append(filtered, order)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

func (o *orderStore) FindByID(id string) (*model.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	orders, err := o.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (o *orderStore) UpdateStatus(id string, status model.OrderStatus) (*model.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	orders, err := o.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			orders[i].UpdatedAt = time.Now()
			if err := o.s.write(ordersFile, orders); err != nil {
				return nil, err
			}
			return &orders[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (o *orderStore) Prune(keep int, olderThan time.Time) (int64, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	orders, err := o.load()
	if err != nil {
		return 0, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	kept := orders
	if len(orders) > keep {
		kept = orders[:keep:keep]
		for _, order := range orders[keep:] {
			if !order.CreatedAt.Before(olderThan) {
				kept = append(kept, order)
			}
		}
	}
	deleted := int64(len(orders) - len(kept))
	if deleted == 0 {
		return 0, nil
	}
	return deleted, o.s.write(ordersFile, kept)
}

func (o *orderStore) Revenue() (decimal.Decimal, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	orders, err := o.load()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Total)
	}
	return total, nil
}

func (o *orderStore) CountAll() (int64, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	orders, err := o.load()
	if err != nil {
		return 0, err
	}
	return int64(len(orders)), nil
}

func (o *orderStore) CountByStatus(status model.OrderStatus) (int64, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	orders, err := o.load()
	if err != nil {
		return 0, err
	}
	var count int64
	for _, order := range orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}
