package services

import (
	"context"
	"fmt"
	"io"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

type BillService struct {
	client *client.Client
}

func NewBillService(c *client.Client) *BillService {
	return &BillService{client: c}
}

func (s *BillService) List(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	if err := s.client.Get(ctx, "/file_reader/bills/", &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (s *BillService) Get(ctx context.Context, id int) (*models.BillDetail, error) {
	var detail models.BillDetail
	if err := s.client.Get(ctx, fmt.Sprintf("/pdf_reader/bills/%d/", id), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// UploadBill sends a PDF bill for server-side parsing. password unlocks
// protected files; model picks the LLM used for extraction. Both optional.
func (s *BillService) UploadBill(ctx context.Context, fileName string, file io.Reader, password, model string) (*models.Bill, error) {
	if err := requireField("file name", fileName); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if password != "" {
		fields["password"] = password
	}
	if model != "" {
		fields["model"] = model
	}

	var bill models.Bill
	if err := s.client.Upload(ctx, "/file_reader/upload/", fileName, file, fields, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// UploadSheet sends a spreadsheet for server-side parsing.
func (s *BillService) UploadSheet(ctx context.Context, fileName string, file io.Reader, model string) (*models.Bill, error) {
	if err := requireField("file name", fileName); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if model != "" {
		fields["model"] = model
	}

	var bill models.Bill
	if err := s.client.Upload(ctx, "/file_reader/upload-sheet/", fileName, file, fields, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}
