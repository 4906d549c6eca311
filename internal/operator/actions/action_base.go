package actions

import (
	"context"

	"github.com/nordfast/estate-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
