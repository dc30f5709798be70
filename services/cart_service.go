package services

import (
	"github.com/FEBRIAN80/managmnt-food/repository"
)

type CartService struct {
	Store    *CartStore
	MenuRepo *repository.MenuRepository
}

func NewCartService(store *CartStore, mr *repository.MenuRepository) *CartService {
	return &CartService{Store: store, MenuRepo: mr}
}

// CartView is what the station UI renders: the lines plus the totals
// recomputed for the discount currently entered.
type CartView struct {
	Lines   []CartLine     `json:"lines"`
	Pricing RoundedPricing `json:"pricing"`
}

func (s *CartService) View(cashierID uint, discountRate int) (*CartView, error) {
	lines := s.Store.Get(cashierID).Lines()
	pricing, err := CalculatePricing(lines, discountRate)
	if err != nil {
		return nil, err
	}
	return &CartView{Lines: lines, Pricing: pricing.Rounded()}, nil
}

// Add looks the menu up fresh so an item made unavailable mid-session is
// rejected instead of silently sold.
func (s *CartService) Add(cashierID, menuID uint) error {
	m, err := s.MenuRepo.Get(menuID)
	if err != nil {
		return err
	}
	if !m.IsAvailable {
		return ErrMenuUnavailable
	}
	s.Store.Get(cashierID).AddItem(m)
	return nil
}

func (s *CartService) ChangeQty(cashierID, menuID uint, delta int) {
	s.Store.Get(cashierID).ChangeQty(menuID, delta)
}

func (s *CartService) Remove(cashierID, menuID uint) {
	s.Store.Get(cashierID).RemoveItem(menuID)
}

func (s *CartService) Clear(cashierID uint) {
	s.Store.Get(cashierID).Clear()
}
