package service

import (
	"context"
	"fmt"

	"bahikhata/internal/domain"
	"bahikhata/internal/port"
	"bahikhata/internal/returns"
)

// ReturnService composes statutory return documents from transaction
// batches pulled off a TransactionSource at call time. The service holds
// no state between calls; the source decides what belongs to the period.
type ReturnService interface {
	GenerateGSTR1(ctx context.Context, src port.TransactionSource, gstin string, period domain.Period) (domain.GSTR1Document, error)
	GenerateGSTR3B(ctx context.Context, src port.TransactionSource, gstin string, period domain.Period) (domain.GSTR3BDocument, error)
	GenerateForm26Q(ctx context.Context, src port.TransactionSource, quarter domain.Quarter, financialYear string, deductor domain.Deductor) (domain.Form26QDocument, error)
	GenerateForm24Q(ctx context.Context, src port.TransactionSource, quarter domain.Quarter, financialYear string, deductor domain.Deductor) (domain.Form24QDocument, error)
	ComposeEWayBill(invoice domain.SalesInvoice, supplier, recipient domain.Party) domain.EWayBillDocument
	ComposeCertificate(payment domain.VendorPayment, deductor domain.Deductor) (domain.Form16ADocument, error)
}

type returnService struct{}

// NewReturnService creates a new ReturnService implementation.
func NewReturnService() ReturnService {
	return &returnService{}
}

func (s *returnService) GenerateGSTR1(ctx context.Context, src port.TransactionSource, gstin string, period domain.Period) (domain.GSTR1Document, error) {
	sales, err := src.SalesInvoices(ctx, period)
	if err != nil {
		return domain.GSTR1Document{}, fmt.Errorf("load sales invoices: %w", err)
	}
	return returns.ComposeGSTR1(gstin, period, sales)
}

func (s *returnService) GenerateGSTR3B(ctx context.Context, src port.TransactionSource, gstin string, period domain.Period) (domain.GSTR3BDocument, error) {
	sales, err := src.SalesInvoices(ctx, period)
	if err != nil {
		return domain.GSTR3BDocument{}, fmt.Errorf("load sales invoices: %w", err)
	}
	purchases, err := src.PurchaseInvoices(ctx, period)
	if err != nil {
		return domain.GSTR3BDocument{}, fmt.Errorf("load purchase invoices: %w", err)
	}
	return returns.ComposeGSTR3B(gstin, period, sales, purchases)
}

func (s *returnService) GenerateForm26Q(ctx context.Context, src port.TransactionSource, quarter domain.Quarter, financialYear string, deductor domain.Deductor) (domain.Form26QDocument, error) {
	payments, err := src.VendorPayments(ctx, financialYear, quarter)
	if err != nil {
		return domain.Form26QDocument{}, fmt.Errorf("load vendor payments: %w", err)
	}
	return returns.ComposeForm26Q(quarter, financialYear, deductor, payments)
}

func (s *returnService) GenerateForm24Q(ctx context.Context, src port.TransactionSource, quarter domain.Quarter, financialYear string, deductor domain.Deductor) (domain.Form24QDocument, error) {
	salaries, err := src.SalaryPayments(ctx, financialYear, quarter)
	if err != nil {
		return domain.Form24QDocument{}, fmt.Errorf("load salary payments: %w", err)
	}
	return returns.ComposeForm24Q(quarter, financialYear, deductor, salaries)
}

func (s *returnService) ComposeEWayBill(invoice domain.SalesInvoice, supplier, recipient domain.Party) domain.EWayBillDocument {
	return returns.ComposeEWayBill(invoice, supplier, recipient)
}

func (s *returnService) ComposeCertificate(payment domain.VendorPayment, deductor domain.Deductor) (domain.Form16ADocument, error) {
	return returns.ComposeCertificate(payment, deductor)
}
