// Package memory implementa los repositorios en memoria. Lo usa la CLI para
// armar conjuntos sobre una planilla sin base de datos.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phenrril/stylematch/internal/domain"
)

type ProductRepo struct {
	mu    sync.RWMutex
	items []domain.Product
}

func NewProductRepo(seed ...domain.Product) *ProductRepo {
	r := &ProductRepo{}
	for i := range seed {
		_ = r.Save(context.Background(), &seed[i])
	}
	return r
}

func (r *ProductRepo) Save(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = *p
			return nil
		}
	}
	r.items = append(r.items, *p)
	return nil
}

func (r *ProductRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List respeta el orden de carga, a diferencia de postgres que ordena por fecha.
func (r *ProductRepo) List(_ context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, 0, len(r.items))
	for _, p := range r.items {
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
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start >= len(out) {
			return []domain.Product{}, total, nil
		}
		end := start + f.PageSize
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (r *ProductRepo) DistinctCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	out := []string{}
	for _, p := range r.items {
		c := string(p.Category)
		if !p.Active || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

type ProfileRepo struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]domain.UserProfile
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{byUser: map[uuid.UUID]domain.UserProfile{}}
}

func (r *ProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Palette = append([]string(nil), p.Palette...)
	return &p, nil
}

func (r *ProfileRepo) Save(_ context.Context, p *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if prev, ok := r.byUser[p.UserID]; ok {
		p.CreatedAt = prev.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	cp := *p
	cp.Palette = append([]string(nil), p.Palette...)
	r.byUser[p.UserID] = cp
	return nil
}

// WardrobeRepo resuelve la prenda de cada ítem contra Products al listar.
type WardrobeRepo struct {
	mu       sync.RWMutex
	items    []domain.WardrobeItem
	Products *ProductRepo
}

func NewWardrobeRepo(products *ProductRepo) *WardrobeRepo {
	return &WardrobeRepo{Products: products}
}

func (r *WardrobeRepo) Add(_ context.Context, item *domain.WardrobeItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	cp := *item
	cp.Product = domain.Product{}
	r.items = append(r.items, cp)
	return nil
}

// ListByUser devuelve lo más reciente primero, igual que postgres.
func (r *WardrobeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WardrobeItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.WardrobeItem{}
	for i := len(r.items) - 1; i >= 0; i-- {
		it := r.items[i]
		if it.UserID != userID {
			continue
		}
		if r.Products != nil {
			if p, err := r.Products.FindByID(ctx, it.ProductID); err == nil {
				it.Product = *p
			}
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *WardrobeRepo) Delete(_ context.Context, userID, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == itemID && it.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
