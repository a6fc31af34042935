package proposal

import "errors"

var (
	// ErrProposalNotFound возвращается, когда предложения нет в хранилище (удалено или истек TTL)
	ErrProposalNotFound = errors.New("proposal.store: proposal not found")

	// ErrEncode возвращается при ошибке сериализации предложения
	ErrEncode = errors.New("proposal.store: failed to encode proposal")

	// ErrDecode возвращается при ошибке десериализации предложения
	ErrDecode = errors.New("proposal.store: failed to decode proposal")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("proposal.store: redis error")
)
