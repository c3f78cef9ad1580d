package server

import (
	"log"
	"sync"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/cart"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/output"
	"github.com/google/uuid"
)

// CartStore holds cart sessions in process memory. Every change is published
// to events when one is configured.
type CartStore struct {
	mu     sync.RWMutex
	carts  map[string][]models.CartItem
	events output.OutputDestination
	now    func() time.Time
}

func NewCartStore(events output.OutputDestination) *CartStore {
	return &CartStore{
		carts:  make(map[string][]models.CartItem),
		events: events,
		now:    time.Now,
	}
}

func (s *CartStore) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.carts[id] = []models.CartItem{}
	s.mu.Unlock()
	return id
}

func (s *CartStore) Get(id string) (cart.Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.carts[id]
	if !ok {
		return cart.Summary{}, false
	}
	return cart.Summarize(items), true
}

// SetQuantity applies one cart event to session id.
func (s *CartStore) SetQuantity(id string, item models.MenuItem, quantity int) (cart.Summary, bool) {
	s.mu.Lock()
	items, ok := s.carts[id]
	if !ok {
		s.mu.Unlock()
		return cart.Summary{}, false
	}
	items = cart.ApplyCartEvent(items, item, quantity)
	s.carts[id] = items
	summary := cart.Summarize(items)
	s.mu.Unlock()

	s.publish(id, item, quantity, summary)
	return summary, true
}

func (s *CartStore) publish(cartID string, item models.MenuItem, quantity int, summary cart.Summary) {
	if s.events == nil {
		return
	}
	eventType := output.EventCartUpdated
	if quantity <= 0 {
		eventType = output.EventCartItemRemove
		quantity = 0
	}
	event := output.CartEvent{
		Timestamp: s.now().Unix(),
		EventType: eventType,
		EventID:   uuid.NewString(),
		CartID:    cartID,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Price:     int32(item.Price),
		Quantity:  int32(quantity),
		ItemCount: int32(summary.ItemCount),
		Subtotal:  int64(summary.Subtotal),
	}
	if err := output.Publish(s.events, output.TopicCartEvents, event); err != nil {
		log.Printf("Error publishing cart event for %s: %v", cartID, err)
	}
}
