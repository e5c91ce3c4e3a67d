package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Menu browsing
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Categories(ctx context.Context) (CategoriesOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Search(ctx context.Context, query string) (SearchOutput, error)
}
