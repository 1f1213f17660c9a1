package services

import (
	"bytes"
	"strings"
	"testing"

	"campusride/internal/domain/models"
)

func TestBuildETicketPDF(t *testing.T) {
	detail := models.BookingDetail{
		PNR: models.PNR{
			PNRID:        "ref-1",
			LocationFrom: "North Campus Gate",
			LocationTo:   "Central Library",
			Date:         "2025-03-10",
			Time:         "08:30",
			Distance:     4.2,
			Price:        150.0,
			Status:       "active",
		},
		Driver: &models.DriverSummary{
			Name:          "Ravi Kumar",
			VehicleNumber: "KA-01-1234",
			VehicleType:   "minibus",
			PhoneNumber:   "555-0101",
		},
		User: &models.UserSummary{Name: "Asha Menon", PhoneNumber: "555-0102"},
	}

	data, filename, err := buildETicketPDF(detail)
	if err != nil {
		t.Fatalf("pdf build failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(filename, "ETICKET_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestBuildETicketPDFWithoutCounterparts(t *testing.T) {
	detail := models.BookingDetail{
		PNR: models.PNR{PNRID: "ref-2", Status: "active"},
	}

	data, _, err := buildETicketPDF(detail)
	if err != nil {
		t.Fatalf("pdf build failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty PDF output")
	}
}
