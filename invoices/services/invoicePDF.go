package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"ca-office-backend/db/models"
	"ca-office-backend/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// invoicePDFData feeds the invoice HTML template.
type invoicePDFData struct {
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	FirmName      string
	FirmAddress   string
	FirmGSTIN     string
	FirmState     string
	ClientName    string
	ClientAddress string
	ClientGSTIN   string
	PlaceOfSupply string
	Lines         []invoicePDFLine
	SubTotal      string
	Discount      string
	TaxableAmount string
	CGST          string
	SGST          string
	IGST          string
	Total         string
	Notes         string
}

type invoicePDFLine struct {
	Description string
	Quantity    string
	Rate        string
	Discount    string
	Amount      string
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; font-size: 13px; color: #222; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #333; padding-bottom: 12px; }
  .firm-name { font-size: 20px; font-weight: bold; }
  .title { font-size: 26px; text-align: right; color: #555; }
  .parties { display: flex; justify-content: space-between; margin: 18px 0; }
  table { width: 100%; border-collapse: collapse; margin-top: 10px; }
  th, td { border: 1px solid #bbb; padding: 6px 8px; text-align: left; }
  th { background: #f0f0f0; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 14px; width: 40%; margin-left: auto; }
  .totals td { border: none; padding: 3px 8px; }
  .totals .grand td { border-top: 2px solid #333; font-weight: bold; }
  .notes { margin-top: 20px; font-size: 12px; color: #555; }
</style>
</head>
<body>
  <div class="header">
    <div>
      <div class="firm-name">{{.FirmName}}</div>
      <div>{{.FirmAddress}}</div>
      {{if .FirmGSTIN}}<div>GSTIN: {{.FirmGSTIN}}</div>{{end}}
      <div>State: {{.FirmState}}</div>
    </div>
    <div class="title">TAX INVOICE<br><span style="font-size:14px">{{.InvoiceNumber}}</span></div>
  </div>
  <div class="parties">
    <div>
      <strong>Billed To</strong><br>
      {{.ClientName}}<br>
      {{.ClientAddress}}<br>
      {{if .ClientGSTIN}}GSTIN: {{.ClientGSTIN}}<br>{{end}}
      Place of supply: {{.PlaceOfSupply}}
    </div>
    <div>
      <strong>Issue Date:</strong> {{.IssueDate}}<br>
      <strong>Due Date:</strong> {{.DueDate}}
    </div>
  </div>
  <table>
    <tr><th>Description</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Discount</th><th class="num">Amount</th></tr>
    {{range .Lines}}
    <tr><td>{{.Description}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.Rate}}</td><td class="num">{{.Discount}}</td><td class="num">{{.Amount}}</td></tr>
    {{end}}
  </table>
  <table class="totals">
    <tr><td>Sub Total</td><td class="num">{{.SubTotal}}</td></tr>
    {{if .Discount}}<tr><td>Additional Discount</td><td class="num">-{{.Discount}}</td></tr>{{end}}
    <tr><td>Taxable Amount</td><td class="num">{{.TaxableAmount}}</td></tr>
    {{if .CGST}}<tr><td>CGST</td><td class="num">{{.CGST}}</td></tr>{{end}}
    {{if .SGST}}<tr><td>SGST</td><td class="num">{{.SGST}}</td></tr>{{end}}
    {{if .IGST}}<tr><td>IGST</td><td class="num">{{.IGST}}</td></tr>{{end}}
    <tr class="grand"><td>Total</td><td class="num">{{.Total}}</td></tr>
  </table>
  {{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
</body>
</html>`

// GenerateInvoicePDF renders the invoice to a PDF under ./public/invoices
// and returns the stored file path.
func GenerateInvoicePDF(invoice *models.Invoice, firm *models.Firm, client *models.Client) (string, error) {
	data := buildInvoicePDFData(invoice, firm, client)

	tmpl, err := template.New("invoice").Parse(invoiceTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse invoice template: %w", err)
	}

	var htmlBuf bytes.Buffer
	if err := tmpl.Execute(&htmlBuf, data); err != nil {
		return "", fmt.Errorf("failed to render invoice HTML: %w", err)
	}

	var pdfBuf bytes.Buffer
	if err := renderA4PDF(htmlBuf.String(), &pdfBuf); err != nil {
		return "", fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	dirPath := "./public/invoices"
	if err := utils.EnsureDirectoryExists(dirPath + "/placeholder"); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("invoice_%s.pdf", invoice.InvoiceNumber)
	fullPath := filepath.Join(dirPath, filename)
	if err := os.WriteFile(fullPath, pdfBuf.Bytes(), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}

func buildInvoicePDFData(invoice *models.Invoice, firm *models.Firm, client *models.Client) invoicePDFData {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	formatDate := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("02 Jan 2006")
	}

	data := invoicePDFData{
		InvoiceNumber: invoice.InvoiceNumber,
		IssueDate:     formatDate(invoice.IssueDate),
		DueDate:       formatDate(invoice.DueDate),
		FirmName:      firm.Name,
		FirmAddress:   deref(firm.Address),
		FirmGSTIN:     deref(firm.GSTIN),
		FirmState:     firm.State,
		ClientName:    client.Name,
		ClientAddress: deref(client.Address),
		ClientGSTIN:   deref(client.GSTIN),
		PlaceOfSupply: invoice.PlaceOfSupply,
		SubTotal:      invoice.SubTotal.StringFixed(2),
		TaxableAmount: invoice.TaxableAmount.StringFixed(2),
		Total:         invoice.Total.StringFixed(2),
		Notes:         deref(invoice.Notes),
	}

	if invoice.AdditionalDiscount > 0 {
		data.Discount = fmt.Sprintf("%.2f", invoice.AdditionalDiscount)
	}
	if !invoice.CGST.IsZero() {
		data.CGST = invoice.CGST.StringFixed(2)
	}
	if !invoice.SGST.IsZero() {
		data.SGST = invoice.SGST.StringFixed(2)
	}
	if !invoice.IGST.IsZero() {
		data.IGST = invoice.IGST.StringFixed(2)
	}

	for _, li := range invoice.LineItems {
		data.Lines = append(data.Lines, invoicePDFLine{
			Description: li.Description,
			Quantity:    fmt.Sprintf("%g", li.Quantity),
			Rate:        fmt.Sprintf("%.2f", li.Rate),
			Discount:    fmt.Sprintf("%.2f", li.Discount),
			Amount:      fmt.Sprintf("%.2f", li.ItemTotal()),
		})
	}

	return data
}

// renderA4PDF prints HTML to an A4 PDF through headless Chrome. The HTML is
// served from a loopback listener because PrintToPDF needs a navigable URL.
func renderA4PDF(htmlContent string, w *bytes.Buffer) error {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(htmlContent))
	})

	server := &http.Server{Handler: mux}
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		return err
	}
	defer listener.Close()

	go server.Serve(listener)
	defer server.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	url := fmt.Sprintf("http://localhost:%d", port)

	var buf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				WithMarginTop(0.4).
				WithMarginBottom(0.6).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return err
	}

	_, err = w.Write(buf)
	return err
}
