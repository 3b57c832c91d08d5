package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/vedavayu/clinic-backend/internal/domain"
	"github.com/vedavayu/clinic-backend/internal/media"
)

type fakePartnerRepo struct {
	partners map[string]*domain.Partner
	nextID   int
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: map[string]*domain.Partner{}}
}

func (f *fakePartnerRepo) Create(_ context.Context, partner *domain.Partner) error {
	f.nextID++
	partner.ID = "p-" + strconv.Itoa(f.nextID)
	copied := *partner
	f.partners[partner.ID] = &copied
	return nil
}

func (f *fakePartnerRepo) Update(_ context.Context, partner *domain.Partner) error {
	if _, ok := f.partners[partner.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *partner
	f.partners[partner.ID] = &copied
	return nil
}

func (f *fakePartnerRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.partners[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.partners, id)
	return nil
}

func (f *fakePartnerRepo) GetByID(_ context.Context, id string) (*domain.Partner, error) {
	partner, ok := f.partners[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *partner
	return &copied, nil
}

func (f *fakePartnerRepo) List(context.Context) ([]domain.Partner, error) {
	out := []domain.Partner{}
	for _, partner := range f.partners {
		out = append(out, *partner)
	}
	return out, nil
}

func newPartnersApp(t *testing.T, repo *fakePartnerRepo, store media.Store) *fiberApp {
	t.Helper()
	app := newTestApp()
	handler := NewPartnersHandler(repo, newTestCoordinator(t, store))
	app.Get("/api/partners", handler.List)
	app.Post("/api/partners", handler.Create)
	app.Put("/api/partners/:id", handler.Update)
	app.Delete("/api/partners/:id", handler.Delete)
	return &fiberApp{app}
}

func TestPartnersCreateRequiresNameAndLogo(t *testing.T) {
	repo := newFakePartnerRepo()
	app := newPartnersApp(t, repo, &fakeMediaStore{})

	// Missing logo.
	req := multipartRequest(t, http.MethodPost, "/api/partners",
		map[string]string{"name": "Wellness Labs"}, nil)
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without logo, got %d", resp.StatusCode)
	}

	// Missing name.
	req = multipartRequest(t, http.MethodPost, "/api/partners",
		nil, map[string][]byte{"logo": []byte("png-bytes")})
	resp = app.test(t, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without name, got %d", resp.StatusCode)
	}
	if len(repo.partners) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestPartnersCreateWithBothImages(t *testing.T) {
	repo := newFakePartnerRepo()
	app := newPartnersApp(t, repo, &fakeMediaStore{})

	req := multipartRequest(t, http.MethodPost, "/api/partners",
		map[string]string{"name": "Wellness Labs"},
		map[string][]byte{"logo": []byte("png-a"), "ownerPhoto": []byte("png-b")})
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	stored := repo.partners["p-1"]
	if stored == nil {
		t.Fatal("partner not persisted")
	}
	if !stored.Logo.Remote() || !stored.OwnerPhoto.Remote() {
		t.Fatalf("expected both images remote: %+v", stored)
	}
	if stored.Website != "#" {
		t.Fatalf("expected website placeholder, got %q", stored.Website)
	}
}

func TestPartnersLogoFallbackLeavesOwnerPhotoAlone(t *testing.T) {
	repo := newFakePartnerRepo()
	calls := 0
	store := &fakeMediaStore{
		uploadFn: func(_ context.Context, _, folder string) (media.Asset, error) {
			calls++
			// First upload (logo) fails, second (owner photo) succeeds.
			if calls == 1 {
				return media.Asset{}, errors.New("host down")
			}
			return media.Asset{PublicID: folder + "/owner", SecureURL: "https://cdn.example.com/" + folder + "/owner"}, nil
		},
	}
	app := newPartnersApp(t, repo, store)

	req := multipartRequest(t, http.MethodPost, "/api/partners",
		map[string]string{"name": "Wellness Labs"},
		map[string][]byte{"logo": []byte("png-a"), "ownerPhoto": []byte("png-b")})
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("logo fallback must not fail the request: got %d", resp.StatusCode)
	}

	stored := repo.partners["p-1"]
	if stored == nil {
		t.Fatal("partner not persisted")
	}
	if stored.Logo.Remote() || !strings.HasPrefix(stored.Logo.URL, "/uploads/partners/") {
		t.Fatalf("expected local logo fallback, got %+v", stored.Logo)
	}
	if !stored.OwnerPhoto.Remote() {
		t.Fatalf("owner photo must be unaffected, got %+v", stored.OwnerPhoto)
	}
}

func TestPartnersDeleteDiscardsBothImages(t *testing.T) {
	repo := newFakePartnerRepo()
	repo.partners["p-1"] = &domain.Partner{
		ID:         "p-1",
		Name:       "Wellness Labs",
		Logo:       domain.Image{URL: "https://cdn.example.com/partners/logo", PublicID: "partners/logo"},
		OwnerPhoto: domain.Image{URL: "https://cdn.example.com/partners/owner", PublicID: "partners/owner"},
	}
	store := &fakeMediaStore{}
	app := newPartnersApp(t, repo, store)

	req := multipartRequest(t, http.MethodDelete, "/api/partners/p-1", nil, nil)
	resp := app.test(t, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(store.deletes) != 2 {
		t.Fatalf("expected both handles cleaned up, got %v", store.deletes)
	}
}
