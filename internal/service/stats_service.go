package service

import (
	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"

	"github.com/shopspring/decimal"
)

// Stats is the admin dashboard overview.
type Stats struct {
	TotalProducts int64           `json:"totalProducts"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	PendingOrders int64           `json:"pendingOrders"`
}

type StatsService interface {
	GetStats() (*Stats, error)
}

type statsService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewStatsService(pRepo repository.ProductRepository, oRepo repository.OrderRepository) StatsService {
	return &statsService{productRepo: pRepo, orderRepo: oRepo}
}

func (s *statsService) GetStats() (*Stats, error) {
	products, err := s.productRepo.CountAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.CountAll()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.Revenue()
	if err != nil {
		return nil, err
	}
	pending, err := s.orderRepo.CountByStatus(model.OrderPending)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalProducts: products,
		TotalOrders:   orders,
		TotalRevenue:  revenue,
		PendingOrders: pending,
	}, nil
}
