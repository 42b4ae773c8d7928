package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/phenrril/stylematch/internal/domain"
)

type memProducts struct {
	mu    sync.Mutex
	items []domain.Product
}

func (m *memProducts) Save(_ context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i] = *p
			return nil
		}
	}
	m.items = append(m.items, *p)
	return nil
}

func (m *memProducts) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memProducts) List(_ context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Product
	for _, p := range m.items {
		if f.ActiveOnly && !p.Active {
			continue
		}
		if f.Category != "" && f.Category != "all" && string(p.Category) != f.Category {
			continue
		}
		if f.Gender != "" && p.Gender != f.Gender && p.Gender != domain.GenderUnisex {
			continue
		}
		out = append(out, p)
	}
	total := int64(len(out))
	if f.PageSize > 0 && len(out) > f.PageSize {
		out = out[:f.PageSize]
	}
	return out, total, nil
}

func (m *memProducts) DistinctCategories(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range m.items {
		if !seen[string(p.Category)] {
			seen[string(p.Category)] = true
			out = append(out, string(p.Category))
		}
	}
	sort.Strings(out)
	return out, nil
}

type memProfiles struct {
	byUser map[uuid.UUID]domain.UserProfile
}

func newMemProfiles() *memProfiles { return &memProfiles{byUser: map[uuid.UUID]domain.UserProfile{}} }

func (m *memProfiles) FindByUserID(_ context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	p, ok := m.byUser[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (m *memProfiles) Save(_ context.Context, p *domain.UserProfile) error {
	m.byUser[p.UserID] = *p
	return nil
}

type memWardrobe struct {
	items []domain.WardrobeItem
	prods *memProducts
}

func (m *memWardrobe) Add(_ context.Context, it *domain.WardrobeItem) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	m.items = append(m.items, *it)
	return nil
}

func (m *memWardrobe) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WardrobeItem, error) {
	var out []domain.WardrobeItem
	for _, it := range m.items {
		if it.UserID != userID {
			continue
		}
		if p, err := m.prods.FindByID(ctx, it.ProductID); err == nil {
			it.Product = *p
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *memWardrobe) Delete(_ context.Context, userID, itemID uuid.UUID) error {
	for i, it := range m.items {
		if it.ID == itemID && it.UserID == userID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

func item(cat domain.Category, color string, price float64) domain.Product {
	return domain.Product{
		ID:       uuid.New(),
		Name:     string(cat) + " " + color,
		Brand:    "Zara",
		Category: cat,
		Color:    color,
		Price:    price,
		Gender:   domain.GenderUnisex,
		Active:   true,
	}
}
