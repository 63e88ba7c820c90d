package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
	"sotrama/internal/repository/sqlite"
)

// ──────────────────────────────────────────────
// 10. ARTISAN DIRECTORY
// ──────────────────────────────────────────────

func newArtisanFixture(t *testing.T) *sqlite.ArtisanRepository {
	t.Helper()

	db := newTestDB(t)
	repo := sqlite.NewArtisanRepository(db)
	ctx := context.Background()

	artisans := []*domain.Artisan{
		{Name: "Moussa Keita", Trade: "menuisier", City: "Bamako", Quarter: "Badalabougou", Contact: "+22376111111", WhatsApp: true, Rating: 4.5},
		{Name: "Aminata Traore", Trade: "couturiere", City: "Bamako", Quarter: "Hamdallaye", Contact: "+22376222222", WhatsApp: false, Rating: 4.8},
		{Name: "Seydou Coulibaly", Trade: "menuisier", City: "Sikasso", Quarter: "Wayerma", Contact: "+22376333333", WhatsApp: true, Rating: 3.9},
	}
	for _, a := range artisans {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("failed to seed artisan: %v", err)
		}
	}

	return repo
}

func TestArtisans_ListAll_SortedByRating(t *testing.T) {
	t.Parallel()

	repo := newArtisanFixture(t)

	artisans, err := repo.GetAll(context.Background(), repository.ArtisanFilter{})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(artisans) != 3 {
		t.Fatalf("expected 3 artisans, got %d", len(artisans))
	}
	if artisans[0].Name != "Aminata Traore" {
		t.Errorf("expected highest rated first, got %s", artisans[0].Name)
	}
}

func TestArtisans_FilterByTradeAndCity(t *testing.T) {
	t.Parallel()

	repo := newArtisanFixture(t)
	ctx := context.Background()

	byTrade, err := repo.GetAll(ctx, repository.ArtisanFilter{Trade: "menuisier"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(byTrade) != 2 {
		t.Errorf("expected 2 carpenters, got %d", len(byTrade))
	}

	combined, err := repo.GetAll(ctx, repository.ArtisanFilter{Trade: "menuisier", City: "Sikasso"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(combined) != 1 || combined[0].Name != "Seydou Coulibaly" {
		t.Errorf("unexpected filter result: %d artisans", len(combined))
	}
}

func TestArtisans_GetByID(t *testing.T) {
	t.Parallel()

	repo := newArtisanFixture(t)
	ctx := context.Background()

	artisan, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if artisan.Trade != "menuisier" {
		t.Errorf("unexpected trade: %s", artisan.Trade)
	}

	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected not found, got: %v", err)
	}
}

func TestArtisans_Comments_NewestFirst(t *testing.T) {
	t.Parallel()

	repo := newArtisanFixture(t)
	ctx := context.Background()

	first := &domain.ArtisanComment{ArtisanID: 1, Content: "Travail soigné", CreatedAt: time.Now().UTC()}
	if err := repo.CreateComment(ctx, first); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	second := &domain.ArtisanComment{ArtisanID: 1, Content: "Très ponctuel", CreatedAt: time.Now().UTC()}
	if err := repo.CreateComment(ctx, second); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected comment IDs to be assigned")
	}

	// Another artisan's comment must not leak into the listing.
	other := &domain.ArtisanComment{ArtisanID: 2, Content: "Belle finition", CreatedAt: time.Now().UTC()}
	if err := repo.CreateComment(ctx, other); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	comments, err := repo.GetComments(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Content != "Très ponctuel" {
		t.Errorf("expected newest first, got %q", comments[0].Content)
	}
	if comments[0].CreatedAt.IsZero() {
		t.Error("expected created at to survive the round trip")
	}
}

func TestArtisans_Comments_EmptyForUncommented(t *testing.T) {
	t.Parallel()

	repo := newArtisanFixture(t)

	comments, err := repo.GetComments(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("expected no comments, got %d", len(comments))
	}
}
