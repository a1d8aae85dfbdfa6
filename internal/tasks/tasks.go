package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names registered on the asynq mux.
const (
	TypeImportReportEmail = "email:import_report"
	TypeInvoiceEmail      = "email:invoice"
)

// ImportReportEmailPayload carries everything the worker needs to mail the
// operator the error report of a bulk import.
type ImportReportEmailPayload struct {
	Recipient      string `json:"recipient"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	AttachmentPath string `json:"attachment_path"`
}

// InvoiceEmailPayload carries an issued invoice PDF to its recipient.
type InvoiceEmailPayload struct {
	Recipient     string `json:"recipient"`
	InvoiceID     string `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	PDFPath       string `json:"pdf_path"`
}

func NewImportReportEmailTask(payload ImportReportEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeImportReportEmail, data), nil
}

func NewInvoiceEmailTask(payload InvoiceEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInvoiceEmail, data), nil
}
