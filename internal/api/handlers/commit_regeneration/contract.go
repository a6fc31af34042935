package commit_regeneration

import (
	"context"

	commitRegeneration "github.com/m04kA/SMC-TourBackoffice/internal/usecase/commit_regeneration"
)

type CommitRegenerationUseCase interface {
	Execute(ctx context.Context, req *commitRegeneration.Request) (*commitRegeneration.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
