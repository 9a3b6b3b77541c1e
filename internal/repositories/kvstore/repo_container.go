package kvstore

import (
	"log/slog"

	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository over a single medium.
func NewRepositoryProvider(medium portsrepo.KeyValueMedium, logger *slog.Logger) portsrepo.RepositoryProvider {
	base := newBaseRepository(medium, logger)

	return portsrepo.RepositoryProvider{
		TransactionRepo: newTransactionRepository(base),
		SavingsRepo:     newSavingsTargetRepository(base),
		ProfileRepo:     newProfileRepository(base),
		Eraser:          base,
	}
}
