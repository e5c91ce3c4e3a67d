package usecase

import (
	"context"
	"errors"
	"net/http"

	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/pkg/operator"
)

// ListEntries passes one page of the kiosk's entries through from the
// operator service.
func (uc *implUseCase) ListEntries(ctx context.Context, input checkout.ListEntriesInput) (checkout.ListEntriesOutput, error) {
	resp, err := uc.svc.ListDataEntries(ctx, operator.ListDataEntriesRequest{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEntries ListDataEntries: %v", err)
		return checkout.ListEntriesOutput{}, err
	}

	return checkout.ListEntriesOutput{
		Items:  resp.Items,
		Total:  resp.Total,
		Limit:  resp.Limit,
		Offset: resp.Offset,
	}, nil
}

// GetEntry returns one entry with its backend lifecycle status.
func (uc *implUseCase) GetEntry(ctx context.Context, id string) (checkout.EntryOutput, error) {
	entry, err := uc.svc.GetDataEntry(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return checkout.EntryOutput{}, checkout.ErrEntryNotFound
		}
		uc.l.Errorf(ctx, "uc.GetEntry GetDataEntry: %v", err)
		return checkout.EntryOutput{}, err
	}

	return checkout.EntryOutput{Entry: *entry}, nil
}

// SubmitEntry hands a draft entry to the backend's review queue.
func (uc *implUseCase) SubmitEntry(ctx context.Context, id string) (checkout.SubmitEntryOutput, error) {
	resp, err := uc.svc.SubmitForApproval(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return checkout.SubmitEntryOutput{}, checkout.ErrEntryNotFound
		}
		uc.l.Errorf(ctx, "uc.SubmitEntry SubmitForApproval: %v", err)
		return checkout.SubmitEntryOutput{}, err
	}

	return checkout.SubmitEntryOutput{
		EntryID:     id,
		Status:      resp.Status,
		SubmittedAt: resp.SubmittedAt,
	}, nil
}

func isNotFound(err error) bool {
	var apiErr *operator.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
