package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк срок его жизни
	ErrDraftNotFound = errors.New("draft storage: draft not found")
)
