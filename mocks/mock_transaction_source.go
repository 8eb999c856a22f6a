package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bahikhata/internal/domain"
)

type MockTransactionSource struct {
	mock.Mock
}

func (m *MockTransactionSource) SalesInvoices(ctx context.Context, period domain.Period) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesInvoice), args.Error(1)
}

func (m *MockTransactionSource) PurchaseInvoices(ctx context.Context, period domain.Period) ([]domain.PurchaseInvoice, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseInvoice), args.Error(1)
}

func (m *MockTransactionSource) VendorPayments(ctx context.Context, financialYear string, quarter domain.Quarter) ([]domain.VendorPayment, error) {
	args := m.Called(ctx, financialYear, quarter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorPayment), args.Error(1)
}

func (m *MockTransactionSource) SalaryPayments(ctx context.Context, financialYear string, quarter domain.Quarter) ([]domain.SalaryPayment, error) {
	args := m.Called(ctx, financialYear, quarter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryPayment), args.Error(1)
}
