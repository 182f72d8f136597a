package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"kdos-backend/internal/models"
)

func TestKoiFishCatalogue(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, request{method: http.MethodPost, path: "/api/koifish", body: map[string]any{
		"fishType":    "Kohaku",
		"description": "White body with red markings",
	}})
	expectStatus(t, w, http.StatusCreated)
	kohaku := decode[models.KoiFishDTO](t, w)

	w = do(t, r, request{method: http.MethodPost, path: "/api/koifish", body: map[string]any{"description": "no type"}})
	expectStatus(t, w, http.StatusBadRequest)

	w = do(t, r, request{method: http.MethodPut, path: fmt.Sprintf("/api/koifish/%d", kohaku.KoiFishID), body: map[string]any{
		"fishType": "Kohaku",
	}})
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.KoiFishDTO](t, w); got.Description != "" {
		t.Errorf("expected description to be cleared, got %q", got.Description)
	}

	owner := seedCustomer(t, "Owner")
	seedFish(t, owner.CustomerID, kohaku.KoiFishID, "Hana")

	// species in use by a fish profile
	w = do(t, r, request{method: http.MethodDelete, path: fmt.Sprintf("/api/koifish/%d", kohaku.KoiFishID)})
	expectStatus(t, w, http.StatusConflict)
}

func TestFishProfileLifecycle(t *testing.T) {
	r := newTestRouter(t)
	owner := seedCustomer(t, "Owner")
	showa := seedKoi(t, "Showa")

	input := map[string]any{
		"name":       "Sakura",
		"weight":     2.4,
		"gender":     "Female",
		"notes":      "Shy",
		"image":      "https://cdn.example.com/sakura.jpg",
		"koiFishId":  showa.KoiFishID,
		"customerId": owner.CustomerID,
	}

	w := do(t, r, request{method: http.MethodPost, path: "/api/fishprofile", body: input})
	expectStatus(t, w, http.StatusCreated)
	sakura := decode[models.FishProfileDTO](t, w)
	if sakura.FishType != "Showa" {
		t.Errorf("expected fishType Showa, got %q", sakura.FishType)
	}

	w = do(t, r, request{method: http.MethodGet, path: fmt.Sprintf("/api/fishprofile/%d", sakura.FishProfileID)})
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.FishProfileDTO](t, w); got != sakura {
		t.Errorf("get returned %+v, want %+v", got, sakura)
	}

	input["koiFishId"] = 999
	w = do(t, r, request{method: http.MethodPost, path: "/api/fishprofile", body: input})
	expectStatus(t, w, http.StatusBadRequest)

	input["koiFishId"] = showa.KoiFishID
	input["image"] = "not a url"
	w = do(t, r, request{method: http.MethodPost, path: "/api/fishprofile", body: input})
	expectStatus(t, w, http.StatusBadRequest)

	w = do(t, r, request{method: http.MethodDelete, path: fmt.Sprintf("/api/fishprofile/%d", sakura.FishProfileID)})
	expectStatus(t, w, http.StatusOK)
	w = do(t, r, request{method: http.MethodDelete, path: fmt.Sprintf("/api/fishprofile/%d", sakura.FishProfileID)})
	expectStatus(t, w, http.StatusNotFound)
}

func TestFishProfilesByCustomer(t *testing.T) {
	r := newTestRouter(t)
	owner := seedCustomer(t, "Owner")
	other := seedCustomer(t, "Other")
	koi := seedKoi(t, "Asagi")

	seedFish(t, owner.CustomerID, koi.KoiFishID, "Momo")
	seedFish(t, owner.CustomerID, koi.KoiFishID, "Kumo")
	seedFish(t, other.CustomerID, koi.KoiFishID, "Momoko")

	w := do(t, r, request{method: http.MethodGet, path: fmt.Sprintf("/api/fishprofile/customer/%d", owner.CustomerID)})
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]models.FishProfileDTO](t, w); len(got) != 2 {
		t.Fatalf("expected 2 fish, got %d", len(got))
	}

	w = do(t, r, request{method: http.MethodGet, path: fmt.Sprintf("/api/fishprofile/customer/%d/search?name=mom", owner.CustomerID)})
	expectStatus(t, w, http.StatusOK)
	got := decode[[]models.FishProfileDTO](t, w)
	if len(got) != 1 || got[0].Name != "Momo" {
		t.Fatalf("search returned %+v", got)
	}

	w = do(t, r, request{method: http.MethodGet, path: fmt.Sprintf("/api/fishprofile/customer/%d/search?name=zzz", owner.CustomerID)})
	expectStatus(t, w, http.StatusNotFound)

	empty := seedCustomer(t, "No fish")
	w = do(t, r, request{method: http.MethodGet, path: fmt.Sprintf("/api/fishprofile/customer/%d", empty.CustomerID)})
	expectStatus(t, w, http.StatusNotFound)
}
