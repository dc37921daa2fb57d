package worker

import (
	"testing"
	"time"

	"github.com/timeless-style/salon-api/internal/models"
)

func TestBuildAppointmentEmailInputWithRelations(t *testing.T) {
	date := time.Date(2026, 10, 12, 14, 30, 0, 0, time.UTC)
	appointment := &models.Appointment{
		AppointmentDate: date,
		Stylist:         &models.Stylist{Name: "Maya"},
		Service:         &models.SalonService{Name: "Balayage"},
	}

	got := buildAppointmentEmailInput("  Ada ", appointment)
	if got.MemberName != "Ada" {
		t.Fatalf("member name want Ada got %q", got.MemberName)
	}
	if got.StylistName != "Maya" || got.ServiceName != "Balayage" {
		t.Fatalf("unexpected relations: %q / %q", got.StylistName, got.ServiceName)
	}
	if !got.Date.Equal(date) {
		t.Fatalf("date not carried")
	}
}

func TestBuildAppointmentEmailInputMissingRelations(t *testing.T) {
	appointment := &models.Appointment{AppointmentDate: time.Now()}

	got := buildAppointmentEmailInput("Ada", appointment)
	if got.StylistName != "" || got.ServiceName != "" {
		t.Fatalf("want empty relation names got %q / %q", got.StylistName, got.ServiceName)
	}
}
