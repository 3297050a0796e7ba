package users

import (
	"errors"
	"testing"
)

func TestNew_DefaultsByRole(t *testing.T) {
	// Veterinario arranca pending (alta sujeta a revisión).
	v := New(User{Name: "Dr. Paz", Email: "PAZ@Clinic.com", Role: RoleVeterinarian})
	if v.Status != StatusPending {
		t.Fatalf("expected vet default pending, got %s", v.Status)
	}
	if v.Email != "paz@clinic.com" {
		t.Fatalf("expected lowercased email, got %q", v.Email)
	}

	// El resto arranca active.
	o := New(User{Name: "Ana", Email: "ana@mail.com", Role: RolePetOwner})
	if o.Status != StatusActive {
		t.Fatalf("expected owner default active, got %s", o.Status)
	}

	// Estado explícito no se pisa.
	s := New(User{Name: "Ana", Email: "ana@mail.com", Role: RolePetOwner, Status: StatusInactive})
	if s.Status != StatusInactive {
		t.Fatalf("expected explicit status preserved, got %s", s.Status)
	}
}

func TestValidate_RejectsUnknownRole(t *testing.T) {
	u := User{Name: "Ana", Email: "ana@mail.com", Role: Role("superuser")}
	if err := u.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidStatus_PendingOnlyForVets(t *testing.T) {
	if !ValidStatus(RoleVeterinarian, StatusPending) {
		t.Fatalf("expected pending valid for veterinarian")
	}
	if ValidStatus(RolePetOwner, StatusPending) {
		t.Fatalf("expected pending invalid for pet owner")
	}
	if ValidStatus(RoleAdmin, StatusPending) {
		t.Fatalf("expected pending invalid for admin")
	}
	for _, s := range []Status{StatusActive, StatusInactive, StatusSuspended} {
		if !ValidStatus(RolePetOwner, s) {
			t.Fatalf("expected %s valid for any role", s)
		}
	}
	if ValidStatus(RoleAdmin, Status("banned")) {
		t.Fatalf("expected unknown status invalid")
	}
}

func TestFilter_SearchAndCategorical(t *testing.T) {
	items := []User{
		{ID: "u1", Name: "Ana García", Email: "ana@mail.com", Role: RolePetOwner, Status: StatusActive},
		{ID: "u2", Name: "Dr. Paz", Email: "paz@clinic.com", Role: RoleVeterinarian, Status: StatusPending},
		{ID: "u3", Name: "Root Admin", Email: "root@clinic.com", Role: RoleAdmin, Status: StatusActive},
	}

	got := Filter(items, Query{Search: "CLINIC.COM"})
	if len(got) != 2 || got[0].ID != "u2" || got[1].ID != "u3" {
		t.Fatalf("expected [u2 u3] by email, got %d items", len(got))
	}

	got = Filter(items, Query{Role: RoleVeterinarian, Status: StatusPending})
	if len(got) != 1 || got[0].ID != "u2" {
		t.Fatalf("expected only u2, got %d items", len(got))
	}

	got = Filter(items, Query{Search: "ana", Role: RoleAdmin})
	if len(got) != 0 {
		t.Fatalf("expected AND between search and role, got %d items", len(got))
	}
}

func TestFilterVeterinarians_ByClinicAndSpecialization(t *testing.T) {
	items := []Veterinarian{
		{User: User{ID: "v1", Name: "Dr. Paz", Status: StatusActive},
			Profile: VetProfile{ClinicID: "c1", Specialization: "Surgery"}},
		{User: User{ID: "v2", Name: "Dr. Sol", Status: StatusActive},
			Profile: VetProfile{ClinicID: "c2", Specialization: "Dermatology"}},
	}

	got := FilterVeterinarians(items, VetQuery{ClinicID: "c1"})
	if len(got) != 1 || got[0].ID != "v1" {
		t.Fatalf("expected v1 by clinic, got %d items", len(got))
	}

	got = FilterVeterinarians(items, VetQuery{Specialization: "dermatology"})
	if len(got) != 1 || got[0].ID != "v2" {
		t.Fatalf("expected v2 by specialization (case-insensitive), got %d items", len(got))
	}
}
