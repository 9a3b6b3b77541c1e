package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/core/services"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/SscSPs/cekel_duit/internal/repositories/kvstore"
	"github.com/SscSPs/cekel_duit/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SavingsServiceTestSuite struct {
	storeSuite
}

func TestSavingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SavingsServiceTestSuite))
}

func (s *SavingsServiceTestSuite) TestCreateTarget_Defaults() {
	created, err := s.svc.Savings.CreateTarget(s.ctx, dto.CreateSavingsTargetRequest{
		Name: "Motor", Target: amount(5000000), Deadline: "2025-06-30",
	})
	s.Require().NoError(err)
	s.NotEmpty(created.ID)
	s.Equal(domain.DefaultSavingsEmoji, created.Emoji)
	s.True(created.Current.IsZero())
	s.True(created.Percent.IsZero())
	s.Equal("5000000", created.Remaining.String())
}

func (s *SavingsServiceTestSuite) TestCreateTarget_Invalid() {
	_, err := s.svc.Savings.CreateTarget(s.ctx, dto.CreateSavingsTargetRequest{
		Name: "Motor", Target: amount(0), Deadline: "2025-06-30",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Savings.CreateTarget(s.ctx, dto.CreateSavingsTargetRequest{
		Name: "Motor", Target: amount(10), Deadline: "besok",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SavingsServiceTestSuite) TestAddMoney_ProgressClampsButCurrentDoesNot() {
	created, err := s.svc.Savings.CreateTarget(s.ctx, dto.CreateSavingsTargetRequest{
		Name: "HP baru", Target: amount(500000), Deadline: "2025-01-01", Emoji: "📱",
	})
	s.Require().NoError(err)

	p, err := s.svc.Savings.AddMoney(s.ctx, created.ID, dto.AddMoneyRequest{Amount: amount(250000)})
	s.Require().NoError(err)
	s.Equal("50", p.Percent.String())
	s.False(p.IsCompleted())

	p, err = s.svc.Savings.AddMoney(s.ctx, created.ID, dto.AddMoneyRequest{Amount: amount(300000)})
	s.Require().NoError(err)
	s.Equal("100", p.Percent.String())
	s.Equal("550000", p.Current.String())
	s.True(p.Remaining.IsZero())
	s.True(p.IsCompleted())

	stored, err := s.repos.SavingsRepo.ListSavingsTargets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(stored, 1)
	s.Equal("550000", stored[0].Current.String(), "stored current is not clamped")
}

func (s *SavingsServiceTestSuite) TestAddMoney_UnknownTarget() {
	_, err := s.svc.Savings.AddMoney(s.ctx, "missing", dto.AddMoneyRequest{Amount: amount(1000)})
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Zero(s.medium.Keys(), "nothing is written for an unknown target")
}

func (s *SavingsServiceTestSuite) TestAddMoney_UnknownTargetWritesNothing() {
	_, err := s.svc.Savings.AddMoney(s.ctx, "missing", dto.AddMoneyRequest{Amount: amount(1000)})
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Zero(s.medium.Keys())
}

func (s *SavingsServiceTestSuite) TestAddMoney_NonPositiveAmount() {
	created, err := s.svc.Savings.CreateTarget(s.ctx, dto.CreateSavingsTargetRequest{
		Name: "Laptop", Target: amount(8000000), Deadline: "2025-12-31",
	})
	s.Require().NoError(err)

	_, err = s.svc.Savings.AddMoney(s.ctx, created.ID, dto.AddMoneyRequest{Amount: amount(-5)})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SavingsServiceTestSuite) TestDeleteTarget_PreservesOrder() {
	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		created, err := s.svc.Savings.CreateTarget(s.ctx, dto.CreateSavingsTargetRequest{
			Name: name, Target: amount(1000), Deadline: "2025-01-01",
		})
		s.Require().NoError(err)
		ids = append(ids, created.ID)
	}

	s.Require().NoError(s.svc.Savings.DeleteTarget(s.ctx, ids[0]))
	s.Require().NoError(s.svc.Savings.DeleteTarget(s.ctx, ids[0]))

	list, err := s.svc.Savings.ListTargets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("B", list[0].Name)
	s.Equal("C", list[1].Name)
}

func (s *SavingsServiceTestSuite) TestListTargets_CorruptedGoalShowsNoProgress() {
	s.medium.Put("savingsTargets", []byte(`[{"id":"x","name":"Rusak","target":"0","current":"10","deadline":"2025-01-01","emoji":"🎯"}]`))

	list, err := s.svc.Savings.ListTargets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.True(list[0].Percent.IsZero())
}

// delayedMedium slows reads down to the order of a real disk access.
type delayedMedium struct {
	*memory.Medium
}

func (m delayedMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	time.Sleep(200 * time.Microsecond)
	return m.Medium.Get(ctx, key)
}

func TestAddMoney_ConcurrentDepositsAreNotLost(t *testing.T) {
	ctx := context.Background()
	repos := kvstore.NewRepositoryProvider(delayedMedium{Medium: memory.NewMedium(0)}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := services.NewSavingsService(repos.SavingsRepo)

	created, err := svc.CreateTarget(ctx, dto.CreateSavingsTargetRequest{
		Name: "Motor", Target: amount(1000), Deadline: "2025-06-30",
	})
	require.NoError(t, err)

	const deposits = 100
	var wg sync.WaitGroup
	for range deposits {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddMoney(ctx, created.ID, dto.AddMoneyRequest{Amount: amount(1)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	targets, err := svc.ListTargets(ctx)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "100", targets[0].Current.String())
}
