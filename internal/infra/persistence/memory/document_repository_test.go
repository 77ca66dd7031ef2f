package memory

import (
	"context"
	"testing"
	"time"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository_FindDocumentsByUser_FiltersByCategory(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	docs := []*entity.Document{
		{UserID: 1, Title: "taxes", Category: "tax", UploadDate: time.Now()},
		{UserID: 1, Title: "portfolio", Category: "investment", UploadDate: time.Now()},
		{UserID: 2, Title: "other", Category: "tax", UploadDate: time.Now()},
	}
	for _, doc := range docs {
		_, err := repo.CreateDocument(ctx, doc)
		require.NoError(t, err)
	}

	all, err := repo.FindDocumentsByUser(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "taxes", all[0].Title)
	assert.Equal(t, "portfolio", all[1].Title)

	taxOnly, err := repo.FindDocumentsByUser(ctx, 1, "tax")
	require.NoError(t, err)
	require.Len(t, taxOnly, 1)
	assert.Equal(t, "taxes", taxOnly[0].Title)
}

func TestDocumentRepository_UpdateDocument_ReplacesAnalysisWholesale(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	created, err := repo.CreateDocument(ctx, &entity.Document{
		UserID:   1,
		Title:    "report",
		Analysis: entity.NewEmptyAnalysis(),
	})
	require.NoError(t, err)

	analysis := &entity.DocumentAnalysis{
		Summary:         "Solid quarter",
		Insights:        []string{"revenue up"},
		Recommendations: []string{"hold"},
	}
	updated, err := repo.UpdateDocument(ctx, created.ID, &repository.DocumentPatch{Analysis: analysis})
	require.NoError(t, err)
	assert.Equal(t, "Solid quarter", updated.Analysis.Summary)
	assert.Equal(t, []string{"revenue up"}, updated.Analysis.Insights)

	// The stored analysis is decoupled from the caller's value.
	analysis.Insights[0] = "mutated"
	stored, err := repo.FindDocumentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "revenue up", stored.Analysis.Insights[0])
}

func TestDocumentRepository_DeleteDocument(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	created, err := repo.CreateDocument(ctx, &entity.Document{UserID: 1, Title: "report"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDocument(ctx, created.ID))

	_, err = repo.FindDocumentByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	// Deleting twice reports not found.
	assert.ErrorIs(t, repo.DeleteDocument(ctx, created.ID), repository.ErrDocumentNotFound)
}

func TestDocumentRepository_DeletedIDIsNeverReused(t *testing.T) {
	repo := NewDocumentRepository()
	ctx := context.Background()

	first, err := repo.CreateDocument(ctx, &entity.Document{UserID: 1, Title: "a"})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteDocument(ctx, first.ID))

	second, err := repo.CreateDocument(ctx, &entity.Document{UserID: 1, Title: "b"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}
