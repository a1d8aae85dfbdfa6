package services

// The GST calculator works entirely in float64. Rounding to paise happens
// once, at display and persistence time, never between steps.

// LineItemInput is one invoice line as the calculator sees it: raw amounts
// plus the resolved tax fraction (0.18 for 18%).
type LineItemInput struct {
	Description string
	Quantity    float64
	Rate        float64
	Discount    float64
	TaxRate     float64
}

// ItemTotal is the line's contribution to the invoice sub-total.
func (li *LineItemInput) ItemTotal() float64 {
	return li.Quantity*li.Rate - li.Discount
}

// TaxInvoiceInput is the full input of one calculation pass.
type TaxInvoiceInput struct {
	Items              []LineItemInput
	AdditionalDiscount float64

	// FirmRegistered is false when the issuing firm holds no GSTIN; an
	// unregistered firm charges no tax at all.
	FirmRegistered bool

	// Interstate is true when the place of supply differs from the firm's
	// state: IGST applies instead of the CGST+SGST split.
	Interstate bool
}

// TaxBreakdown is the calculator's output. Total always equals
// TaxableAmount plus the tax components.
type TaxBreakdown struct {
	SubTotal      float64 `json:"sub_total"`
	TaxableAmount float64 `json:"taxable_amount"`
	TotalTax      float64 `json:"total_tax"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	Total         float64 `json:"total"`
}

// CalculateInvoiceTax computes the GST breakdown of an invoice.
//
// The additional discount is allocated across lines in proportion to their
// share of the sub-total, so each line is taxed on what the customer
// actually pays for it. No tax applies when the firm is unregistered or
// when nothing taxable remains after discounts.
func CalculateInvoiceTax(in TaxInvoiceInput) TaxBreakdown {
	var breakdown TaxBreakdown

	for i := range in.Items {
		breakdown.SubTotal += in.Items[i].ItemTotal()
	}
	breakdown.TaxableAmount = breakdown.SubTotal - in.AdditionalDiscount
	breakdown.Total = breakdown.TaxableAmount

	if !in.FirmRegistered || breakdown.TaxableAmount <= 0 {
		return breakdown
	}

	totalTax := 0.0
	for i := range in.Items {
		itemTotal := in.Items[i].ItemTotal()

		allocatedDiscount := 0.0
		if in.AdditionalDiscount > 0 && breakdown.SubTotal > 0 {
			allocatedDiscount = in.AdditionalDiscount * (itemTotal / breakdown.SubTotal)
		}

		taxableItem := itemTotal - allocatedDiscount
		if taxableItem <= 0 {
			continue
		}
		totalTax += taxableItem * in.Items[i].TaxRate
	}

	breakdown.TotalTax = totalTax
	if in.Interstate {
		breakdown.IGST = totalTax
	} else {
		breakdown.CGST = totalTax / 2
		breakdown.SGST = totalTax / 2
	}
	breakdown.Total = breakdown.TaxableAmount + totalTax

	return breakdown
}
