package propose_regeneration

import (
	"context"

	proposeRegeneration "github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
)

type ProposeRegenerationUseCase interface {
	Execute(ctx context.Context, req *proposeRegeneration.Request) (*proposeRegeneration.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
