package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"campusride/internal/domain/models"
)

type fakeSender struct {
	failures int
	calls    int
}

func (f *fakeSender) Send(to string, msg Message) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("smtp unavailable")
	}
	return nil
}

func testNotifier(s Sender) *Notifier {
	return &Notifier{Sender: s, Retries: 2, Backoff: time.Millisecond, Timeout: time.Second}
}

func TestNotifierRetriesThenSucceeds(t *testing.T) {
	sender := &fakeSender{failures: 2}
	n := testNotifier(sender)

	if err := n.Send("req-1", "user@example.com", Message{Subject: "hi"}); err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if sender.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", sender.calls)
	}
}

func TestNotifierGivesUpAfterBoundedRetries(t *testing.T) {
	sender := &fakeSender{failures: 10}
	n := testNotifier(sender)

	err := n.Send("req-1", "user@example.com", Message{Subject: "hi"})
	if err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if sender.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", sender.calls)
	}
}

type slowSender struct{}

func (slowSender) Send(string, Message) error {
	time.Sleep(200 * time.Millisecond)
	return nil
}

func TestNotifierTimesOutSlowAttempts(t *testing.T) {
	n := &Notifier{Sender: slowSender{}, Retries: 0, Backoff: time.Millisecond, Timeout: 10 * time.Millisecond}

	err := n.Send("req-1", "user@example.com", Message{Subject: "hi"})
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestBookingConfirmationCarriesTripDetails(t *testing.T) {
	pnr := models.PNR{
		PNRID:        "ref-1",
		LocationFrom: "North Campus Gate",
		LocationTo:   "Central Library",
		Date:         "2025-03-10",
		Time:         "08:30",
		Distance:     4.2,
		Price:        150.0,
	}
	driver := models.Driver{FirstName: "Ravi", LastName: "Kumar", VehicleNumber: "KA-01-1234"}

	msg := BookingConfirmation(pnr, driver)
	if !strings.Contains(msg.Subject, "ref-1") {
		t.Fatalf("subject should carry the reference: %q", msg.Subject)
	}
	for _, want := range []string{"ref-1", "North Campus Gate", "Central Library", "Ravi Kumar", "KA-01-1234", "150.00"} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}
