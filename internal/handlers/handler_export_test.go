package handlers_test

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestExportBackup() {
	backup := &domain.Backup{
		Profile:      domain.DefaultProfile(),
		Transactions: []domain.Transaction{{ID: "t-1", Type: domain.Inflow, Amount: decimal.NewFromInt(5), Category: "gaji", Date: "2024-03-01", Note: "gaji"}},
		Savings:      []domain.SavingsTarget{},
		Balance:      decimal.NewFromInt(5),
		ExportDate:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	s.export.On("Backup", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(backup, "cekelduit-backup-2024-03-01.json", nil).Once()

	w := s.do(http.MethodGet, "/api/v1/export", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(`attachment; filename="cekelduit-backup-2024-03-01.json"`, w.Header().Get("Content-Disposition"))
	var res dto.BackupDocument
	s.decode(w, &res)
	s.Len(res.Transactions, 1)
	s.Equal("5", res.Balance.String())
}

func (s *HandlerTestSuite) TestExportTransactionsCSV() {
	s.export.On("WriteTransactionsCSV", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = io.WriteString(args.Get(1).(io.Writer), "id,date\nt-1,2024-03-01\n")
		}).Return(nil).Once()

	w := s.do(http.MethodGet, "/api/v1/export/transactions.csv", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/csv")
	s.Equal("id,date\nt-1,2024-03-01\n", w.Body.String())
}

func (s *HandlerTestSuite) TestExportTransactionsCSV_Failure() {
	s.export.On("WriteTransactionsCSV", mock.Anything, mock.Anything).Return(errors.New("read failed")).Once()

	w := s.do(http.MethodGet, "/api/v1/export/transactions.csv", nil)
	s.Equal(http.StatusInternalServerError, w.Code)
	s.Empty(w.Header().Get("Content-Disposition"))
}

func (s *HandlerTestSuite) TestClearAll() {
	s.export.On("ClearAll", mock.Anything).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/data", nil)
	s.Equal(http.StatusNoContent, w.Code)
}
