package usecase

import (
	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/pkg/log"
)

// implUseCase is the private implementation of checkout.UseCase.
type implUseCase struct {
	svc checkout.OperatorService
	l   log.Logger
}

// New creates a new checkout UseCase implementation.
func New(svc checkout.OperatorService, l log.Logger) *implUseCase {
	return &implUseCase{
		svc: svc,
		l:   l,
	}
}
