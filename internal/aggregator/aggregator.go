// Package aggregator reduces fetched repositories and contribution calendars into the
// metrics stored and served for a wrapped year. Every function is pure.
package aggregator

import (
	"sort"

	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
)

// Totals holds star and fork sums across repositories.
type Totals struct {
	Stars int
	Forks int
}

// AggregateLanguages merges language sizes by name across repositories and orders them by
// size descending. Equal sizes keep first-seen order.
func AggregateLanguages(repos []domain.Repository) []domain.LanguageStat {
	index := make(map[string]int)
	stats := make([]domain.LanguageStat, 0)

	for _, repo := range repos {
		for _, lang := range repo.Languages {
			if i, ok := index[lang.Name]; ok {
				stats[i].LinesCount += lang.Size
				continue
			}
			index[lang.Name] = len(stats)
			stats = append(stats, domain.LanguageStat{
				Language:   lang.Name,
				Color:      lang.Color,
				LinesCount: lang.Size,
			})
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].LinesCount > stats[j].LinesCount
	})

	return stats
}

// FindTopRepository returns the most starred repository, the earliest one on ties, or nil
// for an empty list.
func FindTopRepository(repos []domain.Repository) *domain.TopRepository {
	if len(repos) == 0 {
		return nil
	}

	top := repos[0]
	for _, repo := range repos[1:] {
		if repo.Stars > top.Stars {
			top = repo
		}
	}

	return &domain.TopRepository{
		Name:             top.Name,
		TopLanguage:      top.Language,
		TopLanguageColor: top.LanguageColor,
		Stars:            top.Stars,
		Forks:            top.ForkCount,
	}
}

func CalculateTotals(repos []domain.Repository) Totals {
	var t Totals
	for _, repo := range repos {
		t.Stars += repo.Stars
		t.Forks += repo.ForkCount
	}
	return t
}
