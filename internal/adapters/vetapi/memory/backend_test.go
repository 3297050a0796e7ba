package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-practice-manager/internal/domain/clinics"
	"vet-practice-manager/internal/domain/patients"
	"vet-practice-manager/internal/domain/users"
	"vet-practice-manager/internal/domain/vaccinations"
)

func TestClinics_LicenseUnique(t *testing.T) {
	b := New()
	api := b.Clinics()

	_, err := api.Create(context.Background(), clinics.Clinic{Name: "Central", LicenseNumber: "LIC-1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Case-insensitive: "lic-1" choca con "LIC-1".
	_, err = api.Create(context.Background(), clinics.Clinic{Name: "Copy", LicenseNumber: "lic-1"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate license, got %v", err)
	}
}

func TestClinics_StaffCountAggregated(t *testing.T) {
	b := New()

	clinic, err := b.Clinics().Create(context.Background(), clinics.Clinic{Name: "Central", LicenseNumber: "LIC-1"})
	if err != nil {
		t.Fatalf("Create clinic error: %v", err)
	}

	for _, name := range []string{"Dr. Paz", "Dr. Sol"} {
		_, err := b.Users().Create(context.Background(), users.User{
			Name: name, Email: name + "@clinic.com", Role: users.RoleVeterinarian,
			Status: users.StatusActive,
		}, &users.VetProfile{LicenseNumber: "VET-" + name, ClinicID: clinic.ID})
		if err != nil {
			t.Fatalf("Create vet error: %v", err)
		}
	}

	list, err := b.Clinics().List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].StaffCount != 2 {
		t.Fatalf("expected staff count 2, got %#v", list)
	}
}

func TestBackend_InsertionOrderStable(t *testing.T) {
	b := New()
	api := b.Patients()

	names := []string{"Luna", "Rocky", "Milo"}
	for _, n := range names {
		if _, err := api.Create(context.Background(), patients.Patient{
			Name: n, Species: "dog", OwnerID: "o1",
		}); err != nil {
			t.Fatalf("Create %s error: %v", n, err)
		}
	}

	list, err := api.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	for i, n := range names {
		if list[i].Name != n {
			t.Fatalf("expected insertion order %v, got %s at %d", names, list[i].Name, i)
		}
	}
}

func TestVaccinations_DenormalizePatientFields(t *testing.T) {
	b := New()

	p, err := b.Patients().Create(context.Background(), patients.Patient{
		Name: "Luna", Species: "dog", OwnerID: "o1", OwnerName: "Ana García",
	})
	if err != nil {
		t.Fatalf("Create patient error: %v", err)
	}

	created, err := b.Vaccinations().Create(context.Background(), vaccinations.Vaccination{
		PatientID: p.ID, VaccineName: "Rabivac", VaccineType: vaccinations.TypeRabies,
		AdministeredDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create vaccination error: %v", err)
	}
	if created.PatientName != "Luna" || created.OwnerName != "Ana García" {
		t.Fatalf("expected denormalized patient fields, got %#v", created)
	}

	// List refleja el nombre actual del paciente, no una copia vieja.
	name := "Luna Bonita"
	if _, err := b.Patients().Update(context.Background(), p.ID, patients.UpdateInput{Name: &name}); err != nil {
		t.Fatalf("Update patient error: %v", err)
	}
	list, err := b.Vaccinations().List(context.Background(), vaccinations.ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].PatientName != "Luna Bonita" {
		t.Fatalf("expected refreshed patient name, got %#v", list)
	}
}

func TestUsers_ListVeterinariansIncludesProfile(t *testing.T) {
	b := New()

	_, err := b.Users().Create(context.Background(), users.User{
		Name: "Dr. Paz", Email: "paz@clinic.com", Role: users.RoleVeterinarian,
		Status: users.StatusPending,
	}, &users.VetProfile{LicenseNumber: "VET-1", Specialization: "Surgery"})
	if err != nil {
		t.Fatalf("Create vet error: %v", err)
	}
	_, err = b.Users().Create(context.Background(), users.User{
		Name: "Ana", Email: "ana@mail.com", Role: users.RolePetOwner,
		Status: users.StatusActive,
	}, nil)
	if err != nil {
		t.Fatalf("Create owner error: %v", err)
	}

	vets, err := b.Users().ListVeterinarians(context.Background())
	if err != nil {
		t.Fatalf("ListVeterinarians error: %v", err)
	}
	if len(vets) != 1 || vets[0].Profile.Specialization != "Surgery" {
		t.Fatalf("expected 1 vet with profile, got %#v", vets)
	}

	all, err := b.Users().List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
}

func TestPatients_DeleteNotFound(t *testing.T) {
	b := New()

	if err := b.Patients().Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
