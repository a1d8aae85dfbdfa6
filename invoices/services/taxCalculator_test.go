package services

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestCalculateInvoiceTaxIntrastate(t *testing.T) {
	in := TaxInvoiceInput{
		FirmRegistered: true,
		Items: []LineItemInput{
			{Description: "Audit fees", Quantity: 1, Rate: 1000, TaxRate: 0.18},
		},
	}

	got := CalculateInvoiceTax(in)

	if !almostEqual(got.SubTotal, 1000) {
		t.Errorf("SubTotal = %v, want 1000", got.SubTotal)
	}
	if !almostEqual(got.CGST, 90) || !almostEqual(got.SGST, 90) {
		t.Errorf("CGST/SGST = %v/%v, want 90/90", got.CGST, got.SGST)
	}
	if !almostEqual(got.IGST, 0) {
		t.Errorf("IGST = %v, want 0 intrastate", got.IGST)
	}
	if !almostEqual(got.Total, 1180) {
		t.Errorf("Total = %v, want 1180", got.Total)
	}
}

func TestCalculateInvoiceTaxInterstate(t *testing.T) {
	in := TaxInvoiceInput{
		FirmRegistered: true,
		Interstate:     true,
		Items: []LineItemInput{
			{Quantity: 2, Rate: 500, TaxRate: 0.18},
		},
	}

	got := CalculateInvoiceTax(in)

	if !almostEqual(got.IGST, 180) {
		t.Errorf("IGST = %v, want 180", got.IGST)
	}
	if !almostEqual(got.CGST, 0) || !almostEqual(got.SGST, 0) {
		t.Errorf("CGST/SGST = %v/%v, want 0/0 interstate", got.CGST, got.SGST)
	}
	if !almostEqual(got.Total, 1180) {
		t.Errorf("Total = %v, want 1180", got.Total)
	}
}

func TestCalculateInvoiceTaxUnregisteredFirm(t *testing.T) {
	in := TaxInvoiceInput{
		FirmRegistered: false,
		Items: []LineItemInput{
			{Quantity: 1, Rate: 1000, TaxRate: 0.18},
		},
	}

	got := CalculateInvoiceTax(in)

	if got.TotalTax != 0 || got.CGST != 0 || got.SGST != 0 || got.IGST != 0 {
		t.Errorf("unregistered firm charged tax: %+v", got)
	}
	if !almostEqual(got.Total, 1000) {
		t.Errorf("Total = %v, want 1000", got.Total)
	}
}

func TestCalculateInvoiceTaxLineDiscount(t *testing.T) {
	in := TaxInvoiceInput{
		FirmRegistered: true,
		Items: []LineItemInput{
			{Quantity: 1, Rate: 1000, Discount: 200, TaxRate: 0.18},
		},
	}

	got := CalculateInvoiceTax(in)

	if !almostEqual(got.SubTotal, 800) {
		t.Errorf("SubTotal = %v, want 800", got.SubTotal)
	}
	if !almostEqual(got.TotalTax, 144) {
		t.Errorf("TotalTax = %v, want 144", got.TotalTax)
	}
}

func TestCalculateInvoiceTaxProportionalAllocation(t *testing.T) {
	// A 100 additional discount over lines of 600 and 400 allocates 60
	// and 40 respectively; each line is taxed at its own rate on the
	// discounted amount.
	in := TaxInvoiceInput{
		FirmRegistered:     true,
		AdditionalDiscount: 100,
		Items: []LineItemInput{
			{Quantity: 1, Rate: 600, TaxRate: 0.18},
			{Quantity: 1, Rate: 400, TaxRate: 0.05},
		},
	}

	got := CalculateInvoiceTax(in)

	wantTax := (600-60)*0.18 + (400-40)*0.05
	if !almostEqual(got.TotalTax, wantTax) {
		t.Errorf("TotalTax = %v, want %v", got.TotalTax, wantTax)
	}
	if !almostEqual(got.TaxableAmount, 900) {
		t.Errorf("TaxableAmount = %v, want 900", got.TaxableAmount)
	}
	if !almostEqual(got.Total, 900+wantTax) {
		t.Errorf("Total = %v, want %v", got.Total, 900+wantTax)
	}
}

func TestCalculateInvoiceTaxNothingTaxable(t *testing.T) {
	in := TaxInvoiceInput{
		FirmRegistered:     true,
		AdditionalDiscount: 1000,
		Items: []LineItemInput{
			{Quantity: 1, Rate: 1000, TaxRate: 0.18},
		},
	}

	got := CalculateInvoiceTax(in)

	if got.TotalTax != 0 {
		t.Errorf("TotalTax = %v, want 0 when nothing taxable remains", got.TotalTax)
	}
	if !almostEqual(got.TaxableAmount, 0) {
		t.Errorf("TaxableAmount = %v, want 0", got.TaxableAmount)
	}
}

func TestCalculateInvoiceTaxZeroRateLine(t *testing.T) {
	in := TaxInvoiceInput{
		FirmRegistered: true,
		Items: []LineItemInput{
			{Quantity: 1, Rate: 1000, TaxRate: 0.18},
			{Quantity: 1, Rate: 500, TaxRate: 0}, // exempt service
		},
	}

	got := CalculateInvoiceTax(in)

	if !almostEqual(got.TotalTax, 180) {
		t.Errorf("TotalTax = %v, want 180: exempt line must add no tax", got.TotalTax)
	}
	if !almostEqual(got.Total, 1680) {
		t.Errorf("Total = %v, want 1680", got.Total)
	}
}

func TestCalculateInvoiceTaxTotalIdentity(t *testing.T) {
	inputs := []TaxInvoiceInput{
		{FirmRegistered: true, Items: []LineItemInput{{Quantity: 3, Rate: 333.33, TaxRate: 0.18}}},
		{FirmRegistered: true, Interstate: true, AdditionalDiscount: 50,
			Items: []LineItemInput{{Quantity: 1, Rate: 700, Discount: 25, TaxRate: 0.12}}},
		{FirmRegistered: false, Items: []LineItemInput{{Quantity: 1, Rate: 100, TaxRate: 0.28}}},
	}

	for i, in := range inputs {
		got := CalculateInvoiceTax(in)
		if !almostEqual(got.Total, got.TaxableAmount+got.TotalTax) {
			t.Errorf("case %d: Total %v != TaxableAmount %v + TotalTax %v",
				i, got.Total, got.TaxableAmount, got.TotalTax)
		}
		if !almostEqual(got.TotalTax, got.CGST+got.SGST+got.IGST) {
			t.Errorf("case %d: tax components do not sum to TotalTax", i)
		}
	}
}
