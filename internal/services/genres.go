package services

import (
	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/musiconnect/musiconnect-api/internal/repository"
)

// resolveGenres validates genre names against the fixed enum and then
// re-verifies every row exists in the catalog table. The second check guards
// against a partially seeded catalog; both failures surface the same way.
func resolveGenres(repo repository.CatalogRepository, names []string) ([]models.MusicGenre, error) {
	if len(names) == 0 {
		return nil, nil
	}

	parsed := make([]catalog.MusicGenre, 0, len(names))
	for _, name := range names {
		g, ok := catalog.ParseMusicGenre(name)
		if !ok {
			return nil, apperr.RuleViolation("invalid music genre")
		}
		parsed = append(parsed, g)
	}

	rows, err := repo.FindGenresByName(parsed)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(parsed) {
		return nil, apperr.RuleViolation("invalid music genre")
	}
	return rows, nil
}
