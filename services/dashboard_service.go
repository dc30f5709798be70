package services

import (
	"time"

	"github.com/FEBRIAN80/managmnt-food/repository"
)

type DashboardService struct {
	TxnRepo *repository.TransactionRepository
	InvRepo *repository.InventoryRepository
}

func NewDashboardService(tr *repository.TransactionRepository, ir *repository.InventoryRepository) *DashboardService {
	return &DashboardService{TxnRepo: tr, InvRepo: ir}
}

type DashboardStats struct {
	TodaySales        int64 `json:"todaySales"`
	TodayTransactions int64 `json:"todayTransactions"`
	LowStockItems     int64 `json:"lowStockItems"`
	TotalIngredients  int64 `json:"totalIngredients"`
}

func (s *DashboardService) Stats(now time.Time) (*DashboardStats, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sales, count, err := s.TxnRepo.SalesSince(startOfDay)
	if err != nil {
		return nil, err
	}
	low, err := s.InvRepo.LowStockCount()
	if err != nil {
		return nil, err
	}
	total, err := s.InvRepo.Count()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodaySales:        sales,
		TodayTransactions: count,
		LowStockItems:     low,
		TotalIngredients:  total,
	}, nil
}
