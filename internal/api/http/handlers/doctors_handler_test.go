package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/vedavayu/clinic-backend/internal/domain"
	"github.com/vedavayu/clinic-backend/internal/media"
	"github.com/vedavayu/clinic-backend/internal/repository"
)

type fakeDoctorRepo struct {
	doctors map[string]*domain.Doctor
	nextID  int
	deleted []string
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[string]*domain.Doctor{}}
}

func (f *fakeDoctorRepo) Create(_ context.Context, doctor *domain.Doctor) error {
	f.nextID++
	doctor.ID = "d-" + strconv.Itoa(f.nextID)
	copied := *doctor
	f.doctors[doctor.ID] = &copied
	return nil
}

func (f *fakeDoctorRepo) Update(_ context.Context, doctor *domain.Doctor) error {
	if _, ok := f.doctors[doctor.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *doctor
	f.doctors[doctor.ID] = &copied
	return nil
}

func (f *fakeDoctorRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.doctors[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.doctors, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id string) (*domain.Doctor, error) {
	doctor, ok := f.doctors[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *doctor
	return &copied, nil
}

func (f *fakeDoctorRepo) List(_ context.Context, filter repository.DoctorFilter) ([]domain.Doctor, error) {
	out := []domain.Doctor{}
	for _, doctor := range f.doctors {
		if filter.Name != "" && !strings.Contains(strings.ToLower(doctor.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, *doctor)
	}
	return out, nil
}

func newDoctorsApp(t *testing.T, repo *fakeDoctorRepo, store media.Store) *fiberApp {
	t.Helper()
	app := newTestApp()
	handler := NewDoctorsHandler(repo, newTestCoordinator(t, store))
	app.Get("/api/doctors", handler.List)
	app.Get("/api/doctors/:id", handler.Get)
	app.Post("/api/doctors", handler.Create)
	app.Put("/api/doctors/:id", handler.Update)
	app.Delete("/api/doctors/:id", handler.Delete)
	return &fiberApp{app}
}

func TestDoctorsCreate(t *testing.T) {
	repo := newFakeDoctorRepo()
	store := &fakeMediaStore{}
	app := newDoctorsApp(t, repo, store)

	req := multipartRequest(t, http.MethodPost, "/api/doctors",
		map[string]string{"name": "Dr. Rao", "specialty": "Physiotherapy"},
		map[string][]byte{"image": []byte("jpeg-bytes")})
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}

	stored := repo.doctors["d-1"]
	if stored == nil {
		t.Fatal("doctor not persisted")
	}
	if stored.Photo.PublicID != "doctors/asset-1" {
		t.Fatalf("expected remote handle recorded, got %+v", stored.Photo)
	}
	if stored.Status != domain.DoctorStatusActive {
		t.Fatalf("expected default active status, got %q", stored.Status)
	}
}

func TestDoctorsCreateValidatesRequiredFields(t *testing.T) {
	repo := newFakeDoctorRepo()
	app := newDoctorsApp(t, repo, &fakeMediaStore{})

	req := multipartRequest(t, http.MethodPost, "/api/doctors",
		map[string]string{"name": "Dr. Rao"}, nil)
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if code := errorCode(t, decodeBody(t, resp)); code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %s", code)
	}
	if len(repo.doctors) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestDoctorsCreateFallsBackWhenUploadFails(t *testing.T) {
	repo := newFakeDoctorRepo()
	store := &fakeMediaStore{
		uploadFn: func(context.Context, string, string) (media.Asset, error) {
			return media.Asset{}, errors.New("host down")
		},
	}
	app := newDoctorsApp(t, repo, store)

	req := multipartRequest(t, http.MethodPost, "/api/doctors",
		map[string]string{"name": "Dr. Rao", "specialty": "Physiotherapy"},
		map[string][]byte{"image": []byte("jpeg-bytes")})
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload failure must degrade, not fail: got %d", resp.StatusCode)
	}

	stored := repo.doctors["d-1"]
	if stored == nil {
		t.Fatal("doctor not persisted")
	}
	if stored.Photo.PublicID != "" {
		t.Fatalf("fallback image must carry no handle, got %q", stored.Photo.PublicID)
	}
	if !strings.HasPrefix(stored.Photo.URL, "/uploads/doctors/") {
		t.Fatalf("expected local fallback URL, got %q", stored.Photo.URL)
	}
}

func TestDoctorsUpdateReplacesImage(t *testing.T) {
	repo := newFakeDoctorRepo()
	repo.doctors["d-1"] = &domain.Doctor{
		ID:        "d-1",
		Name:      "Dr. Rao",
		Specialty: "Physiotherapy",
		Status:    domain.DoctorStatusActive,
		Photo:     domain.Image{URL: "https://cdn.example.com/doctors/old", PublicID: "doctors/old"},
	}
	store := &fakeMediaStore{}
	app := newDoctorsApp(t, repo, store)

	req := multipartRequest(t, http.MethodPut, "/api/doctors/d-1",
		map[string]string{"specialty": "Ayurveda"},
		map[string][]byte{"image": []byte("new-bytes")})
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	stored := repo.doctors["d-1"]
	if stored.Specialty != "Ayurveda" || stored.Name != "Dr. Rao" {
		t.Fatalf("partial update broken: %+v", stored)
	}
	if stored.Photo.PublicID != "doctors/asset-1" {
		t.Fatalf("expected new handle, got %+v", stored.Photo)
	}
	if len(store.deletes) != 1 || store.deletes[0] != "doctors/old" {
		t.Fatalf("expected old handle deleted once, got %v", store.deletes)
	}
}

func TestDoctorsDeleteCleansUpRemote(t *testing.T) {
	repo := newFakeDoctorRepo()
	repo.doctors["d-1"] = &domain.Doctor{
		ID:    "d-1",
		Name:  "Dr. Rao",
		Photo: domain.Image{URL: "https://cdn.example.com/doctors/old", PublicID: "doctors/old"},
	}
	store := &fakeMediaStore{
		deleteFn: func(context.Context, string) error { return errors.New("host down") },
	}
	app := newDoctorsApp(t, repo, store)

	req := httptest.NewRequest(http.MethodDelete, "/api/doctors/d-1", nil)
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remote cleanup failure must not fail the delete: got %d", resp.StatusCode)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "d-1" {
		t.Fatalf("expected row deleted, got %v", repo.deleted)
	}
	if len(store.deletes) != 1 {
		t.Fatalf("expected remote delete attempt, got %v", store.deletes)
	}
}

func TestDoctorsGetUnknown(t *testing.T) {
	app := newDoctorsApp(t, newFakeDoctorRepo(), &fakeMediaStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/missing", nil)
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if code := errorCode(t, decodeBody(t, resp)); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}
