package usecase

import (
	"ordering-kiosk/internal/catalog/repository"
	"ordering-kiosk/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
