package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)

	// Search matches the query case-insensitively against the English name
	// and as a plain substring against the Arabic name and the barcode.
	Search(ctx context.Context, query string) ([]*Product, error)

	// LookupBarcode does an exact match of the trimmed input against a
	// product barcode; this is the scanner fast path.
	LookupBarcode(ctx context.Context, input string) (*Product, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func validate(req ProductRequest) error {
	if strings.TrimSpace(req.Barcode) == "" {
		return fmt.Errorf("barcode is required")
	}
	if strings.TrimSpace(req.NameEN) == "" {
		return fmt.Errorf("name_en is required")
	}
	if strings.TrimSpace(req.NameAR) == "" {
		return fmt.Errorf("name_ar is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "General"
	}
	p := &Product{
		ID:       uuid.New(),
		Barcode:  req.Barcode,
		NameEN:   req.NameEN,
		NameAR:   req.NameAR,
		Price:    req.Price,
		Category: category,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Barcode = req.Barcode
	p.NameEN = req.NameEN
	p.NameAR = req.NameAR
	p.Price = req.Price
	if req.Category != "" {
		p.Category = req.Category
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	// Historical transactions carry their own item snapshots, so deleting
	// a product never touches the ledger.
	return s.repo.Delete(ctx, id)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, query string) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return products, nil
	}

	// the query is lowered once and matched against all three fields
	q := strings.ToLower(query)
	var matches []*Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.NameEN), q) ||
			strings.Contains(p.NameAR, q) ||
			strings.Contains(p.Barcode, q) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *service) LookupBarcode(ctx context.Context, input string) (*Product, error) {
	barcode := strings.TrimSpace(input)
	if barcode == "" {
		return nil, ErrProductNotFound
	}
	return s.repo.GetByBarcode(ctx, barcode)
}
