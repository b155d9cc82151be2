package usecases_port

import "context"

type RemoveListingUseCase interface {
	Execute(ctx context.Context, listingID string) error
}
