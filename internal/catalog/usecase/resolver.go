package usecase

import (
	"context"

	"ordering-kiosk/internal/catalog"
	"ordering-kiosk/internal/catalog/repository"
	"ordering-kiosk/internal/model"
)

// Resolver adapts the catalog repository to the single-item lookup other
// domains consume. The miss-is-not-an-error convention carries through:
// an unknown ID resolves to the zero MenuItem with a nil error.
type Resolver struct {
	repo repository.Repository
}

// NewResolver creates a Resolver over the given repository.
func NewResolver(repo repository.Repository) Resolver {
	return Resolver{repo: repo}
}

// ResolveItem looks up one menu item by ID.
func (r Resolver) ResolveItem(ctx context.Context, id string) (model.MenuItem, error) {
	return r.repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: id})
}

// Searcher answers committed search-box queries with the page filter, so a
// query that matches an ingredient finds the item too.
type Searcher struct {
	repo repository.Repository
}

// NewSearcher creates a Searcher over the given repository.
func NewSearcher(repo repository.Repository) Searcher {
	return Searcher{repo: repo}
}

// Search returns the items matching query, in menu order.
func (s Searcher) Search(ctx context.Context, query string) ([]model.MenuItem, error) {
	items, err := s.repo.ListItems(ctx, repository.ListItemsOptions{})
	if err != nil {
		return nil, err
	}
	return catalog.Filter(items, catalog.FilterCriteria{Query: query}), nil
}
