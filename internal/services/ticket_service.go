package services

import (
	"bytes"
	"fmt"
	"strings"

	"campusride/internal/domain/models"
	"campusride/internal/repositories"
	"campusride/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a PDF e-ticket for a booking.
type TicketService struct {
	PNRRepo   repositories.PNRRepo
	RequestID string
}

func (s TicketService) GenerateETicket(pnrID string) ([]byte, string, error) {
	detail, err := BookingService{PNRRepo: s.PNRRepo, DB: s.PNRRepo.DB}.GetBooking(pnrID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", "pnr="+detail.PNR.PNRID)
	return buildETicketPDF(detail)
}

func buildETicketPDF(d models.BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	driverName, vehicleNumber, vehicleType, driverPhone := "-", "-", "-", "-"
	if d.Driver != nil {
		driverName = safe(d.Driver.Name, "-")
		vehicleNumber = safe(d.Driver.VehicleNumber, "-")
		vehicleType = safe(d.Driver.VehicleType, "-")
		driverPhone = safe(d.Driver.PhoneNumber, "-")
	}
	passengerName := "-"
	if d.User != nil {
		passengerName = safe(d.User.Name, "-")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR            : %s", d.PNR.PNRID),
		fmt.Sprintf("Passenger      : %s", passengerName),
		fmt.Sprintf("Route          : %s -> %s", safe(d.PNR.LocationFrom, "-"), safe(d.PNR.LocationTo, "-")),
		fmt.Sprintf("Date/Time      : %s %s", safe(d.PNR.Date, "-"), safe(d.PNR.Time, "-")),
		fmt.Sprintf("Distance       : %.2f km", d.PNR.Distance),
		fmt.Sprintf("Fare           : %s", utils.FormatMoney(d.PNR.Price)),
		fmt.Sprintf("Status         : %s", safe(d.PNR.Status, "-")),
		fmt.Sprintf("Driver         : %s", driverName),
		fmt.Sprintf("Vehicle        : %s (%s)", vehicleNumber, vehicleType),
		fmt.Sprintf("Driver Contact : %s", driverPhone),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this e-ticket covers one passenger. Please show it when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(d.PNR.PNRID))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	return out.String()
}
