package booking

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestService() (*DefaultBookingService, *memBookings) {
	bookings := &memBookings{}
	return NewBookingService(bookings, &memServices{services: clinicServices()}, nil), bookings
}

func candidate(slot string) models.Booking {
	return models.Booking{
		Treatment: "Cleaning",
		Date:      "2024-01-01",
		Slot:      slot,
		Patient:   "p@x.com",
	}
}

func TestAdmit_DuplicateReturnsExisting(t *testing.T) {
	svc, bookings := newTestService()
	ctx := context.Background()

	first, err := svc.Admit(ctx, candidate("9:00 AM"))
	if err != nil {
		t.Fatalf("first Admit: %v", err)
	}
	if !first.Success || first.Booking.ID.IsZero() {
		t.Fatalf("expected success with id, got %+v", first)
	}

	second, err := svc.Admit(ctx, candidate("10:00 AM"))
	if err != nil {
		t.Fatalf("second Admit: %v", err)
	}
	if second.Success {
		t.Fatal("expected duplicate to be rejected")
	}
	if second.Booking.ID != first.Booking.ID || second.Booking.Slot != "9:00 AM" {
		t.Errorf("expected the original booking, got %+v", second.Booking)
	}
	if len(bookings.bookings) != 1 {
		t.Errorf("expected one stored booking, got %d", len(bookings.bookings))
	}
}

func TestAdmit_DifferentDateOrTreatmentIsNew(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Admit(ctx, candidate("9:00 AM")); err != nil {
		t.Fatal(err)
	}
	otherDay := candidate("9:00 AM")
	otherDay.Date = "2024-01-02"
	res, err := svc.Admit(ctx, otherDay)
	if err != nil || !res.Success {
		t.Errorf("expected another day to be admitted, got %+v, %v", res, err)
	}
	otherTreatment := candidate("9:00 AM")
	otherTreatment.Treatment = "Whitening"
	res, err = svc.Admit(ctx, otherTreatment)
	if err != nil || !res.Success {
		t.Errorf("expected another treatment to be admitted, got %+v, %v", res, err)
	}
}

func TestAdmit_Validation(t *testing.T) {
	svc, _ := newTestService()

	unknown := candidate("9:00 AM")
	unknown.Treatment = "Surgery"
	missing := candidate("")

	for name, c := range map[string]models.Booking{"unknown treatment": unknown, "missing slot": missing} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Admit(context.Background(), c); !errors.Is(err, utils.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAdmit_ClientCannotPrepay(t *testing.T) {
	svc, _ := newTestService()
	c := candidate("9:00 AM")
	c.Paid = true
	c.TransactionID = "pi_fake"

	res, err := svc.Admit(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	if res.Booking.Paid || res.Booking.TransactionID != "" {
		t.Errorf("expected payment fields to be cleared, got %+v", res.Booking)
	}
}

func TestListForPatient(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	if _, err := svc.Admit(ctx, candidate("9:00 AM")); err != nil {
		t.Fatal(err)
	}

	got, err := svc.ListForPatient(ctx, "p@x.com", "p@x.com")
	if err != nil || len(got) != 1 {
		t.Errorf("expected own booking, got %v, %v", got, err)
	}
	if _, err := svc.ListForPatient(ctx, "intruder@x.com", "p@x.com"); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	res, err := svc.Admit(ctx, candidate("9:00 AM"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetByID(ctx, res.Booking.ID.Hex())
	if err != nil || got.ID != res.Booking.ID {
		t.Errorf("expected stored booking, got %v, %v", got, err)
	}
	if _, err := svc.GetByID(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByID(ctx, "not-an-id"); utils.StatusFor(err) != 500 {
		t.Errorf("expected malformed id to be a server failure, got %v", err)
	}
}
