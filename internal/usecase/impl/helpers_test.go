package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lodging/internal/domain/repository"
	mockRepo "lodging/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes the transaction manager run fn against a factory
// handing out the given repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	customerRepo repository.CustomerRepository,
	reservationRepo repository.ReservationRepository,
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if customerRepo != nil {
		factory.EXPECT().NewCustomerRepository().Return(customerRepo).Maybe()
	}
	if reservationRepo != nil {
		factory.EXPECT().NewReservationRepository().Return(reservationRepo).Maybe()
	}

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
