package vaccinations

import (
	"testing"
	"time"
)

func TestNextDueDate_RabiesThreeYears(t *testing.T) {
	administered := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	got := NextDueDate(administered, TypeRabies)
	want := time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNextDueDate_CoreAndNonCoreOneYear(t *testing.T) {
	administered := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	want := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	for _, vt := range []VaccineType{TypeCore, TypeNonCore} {
		if got := NextDueDate(administered, vt); !got.Equal(want) {
			t.Fatalf("%s: expected %v, got %v", vt, want, got)
		}
	}
}

func TestNextDueDate_UnknownTypeFallsBackToOneYear(t *testing.T) {
	administered := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	got := NextDueDate(administered, VaccineType("experimental"))
	want := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected fallback +1y, got %v", got)
	}
}

func TestStatusAt_Windows(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		nextDue time.Time
		want    Status
	}{
		{"due within window", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), StatusDueSoon},
		{"past due", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), StatusOverdue},
		{"far in the future", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), StatusCompleted},
		{"due exactly now", now, StatusDueSoon},
		{"due exactly at window edge", now.Add(DefaultLookahead), StatusDueSoon},
		{"due just past window edge", now.Add(DefaultLookahead + time.Hour), StatusCompleted},
	}

	for _, tc := range cases {
		if got := StatusAt(tc.nextDue, now, DefaultLookahead); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestStatusAt_ZeroLookaheadUsesDefault(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	nextDue := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	if got := StatusAt(nextDue, now, 0); got != StatusDueSoon {
		t.Fatalf("expected due-soon with default window, got %s", got)
	}
}

func TestDerive_ReportsOverrideDivergence(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	v := Vaccination{
		NextDueDate:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), // derivado: overdue
		Status:           StatusCompleted,                             // override manual
		StatusOverridden: true,
	}

	o := Derive(v, now, DefaultLookahead)
	if o.Status != StatusOverdue {
		t.Fatalf("expected derived overdue, got %s", o.Status)
	}
	if !o.Diverged {
		t.Fatalf("expected divergence flagged when override disagrees with derivation")
	}
}

func TestDerive_NoDivergenceWithoutOverride(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	v := Vaccination{
		NextDueDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:      StatusCompleted, // dato viejo guardado, sin override
	}

	o := Derive(v, now, DefaultLookahead)
	if o.Status != StatusOverdue {
		t.Fatalf("expected derived overdue, got %s", o.Status)
	}
	if o.Diverged {
		t.Fatalf("expected no divergence flag without manual override")
	}
}

func TestNew_DerivesNextDueFromType(t *testing.T) {
	administered := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	v := New(Vaccination{
		PatientID:        "p1",
		VaccineName:      "Rabivac",
		VaccineType:      TypeRabies,
		AdministeredDate: administered,
	})
	want := time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC)
	if !v.NextDueDate.Equal(want) {
		t.Fatalf("expected derived next due %v, got %v", want, v.NextDueDate)
	}

	// Si vino explícita, no se pisa.
	explicit := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	v2 := New(Vaccination{
		PatientID:        "p1",
		VaccineName:      "Rabivac",
		VaccineType:      TypeRabies,
		AdministeredDate: administered,
		NextDueDate:      explicit,
	})
	if !v2.NextDueDate.Equal(explicit) {
		t.Fatalf("expected explicit next due preserved, got %v", v2.NextDueDate)
	}
}
