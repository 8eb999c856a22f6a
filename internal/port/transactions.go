// Package port declares the collaborator interfaces the engine consumes.
// The record store that owns persisted transactions lives outside this
// module; composers only ever see the batches it supplies.
package port

import (
	"context"

	"bahikhata/internal/domain"
)

// TransactionSource supplies the transaction batches a filing period is
// composed from. Implementations are read-only.
type TransactionSource interface {
	SalesInvoices(ctx context.Context, period domain.Period) ([]domain.SalesInvoice, error)
	PurchaseInvoices(ctx context.Context, period domain.Period) ([]domain.PurchaseInvoice, error)
	VendorPayments(ctx context.Context, financialYear string, quarter domain.Quarter) ([]domain.VendorPayment, error)
	SalaryPayments(ctx context.Context, financialYear string, quarter domain.Quarter) ([]domain.SalaryPayment, error)
}

// SliceSource adapts in-memory batches to TransactionSource. The HTTP
// layer wraps posted record sets in one of these; embedding callers can
// provide their own store-backed implementation instead.
type SliceSource struct {
	Sales     []domain.SalesInvoice
	Purchases []domain.PurchaseInvoice
	Vendor    []domain.VendorPayment
	Salaries  []domain.SalaryPayment
}

func (s *SliceSource) SalesInvoices(context.Context, domain.Period) ([]domain.SalesInvoice, error) {
	return s.Sales, nil
}

func (s *SliceSource) PurchaseInvoices(context.Context, domain.Period) ([]domain.PurchaseInvoice, error) {
	return s.Purchases, nil
}

func (s *SliceSource) VendorPayments(context.Context, string, domain.Quarter) ([]domain.VendorPayment, error) {
	return s.Vendor, nil
}

func (s *SliceSource) SalaryPayments(context.Context, string, domain.Quarter) ([]domain.SalaryPayment, error) {
	return s.Salaries, nil
}
