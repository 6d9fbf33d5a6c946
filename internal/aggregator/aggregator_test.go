package aggregator_test

import (
	"testing"

	"github.com/Tusharxhub/GitHubWrapped/internal/aggregator"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFindTopRepositoryFirstMaxWins(t *testing.T) {
	repos := []domain.Repository{
		{Name: "first", Stars: 5},
		{Name: "second", Stars: 12, ForkCount: 3, Language: "Go", LanguageColor: "#00ADD8"},
		{Name: "third", Stars: 12},
	}

	top := aggregator.FindTopRepository(repos)
	require.NotNil(t, top)
	require.Equal(t, domain.TopRepository{
		Name:             "second",
		TopLanguage:      "Go",
		TopLanguageColor: "#00ADD8",
		Stars:            12,
		Forks:            3,
	}, *top)
}

func TestFindTopRepositoryIsNeverBelowAnother(t *testing.T) {
	repos := []domain.Repository{
		{Name: "a", Stars: 3}, {Name: "b", Stars: 40}, {Name: "c", Stars: 7}, {Name: "d", Stars: 39},
	}

	top := aggregator.FindTopRepository(repos)
	for _, r := range repos {
		require.GreaterOrEqual(t, top.Stars, r.Stars)
	}
	require.Equal(t, "b", top.Name)
}

func TestEmptyRepositories(t *testing.T) {
	require.Nil(t, aggregator.FindTopRepository(nil))
	require.Equal(t, aggregator.Totals{}, aggregator.CalculateTotals(nil))
	require.Empty(t, aggregator.AggregateLanguages(nil))
}

func TestCalculateTotalsIgnoresOrder(t *testing.T) {
	repos := []domain.Repository{
		{Stars: 1, ForkCount: 2},
		{Stars: 10, ForkCount: 0},
		{Stars: 4, ForkCount: 7},
	}
	reversed := []domain.Repository{repos[2], repos[1], repos[0]}

	want := aggregator.Totals{Stars: 15, Forks: 9}
	require.Equal(t, want, aggregator.CalculateTotals(repos))
	require.Equal(t, want, aggregator.CalculateTotals(reversed))
}

func TestAggregateLanguages(t *testing.T) {
	repos := []domain.Repository{
		{Languages: []domain.LanguageSize{
			{Name: "Go", Color: "#00ADD8", Size: 100},
			{Name: "Shell", Color: "#89e051", Size: 50},
		}},
		{Languages: []domain.LanguageSize{
			{Name: "TypeScript", Color: "#3178c6", Size: 50},
			{Name: "Go", Color: "#00ADD8", Size: 25},
		}},
		{Languages: []domain.LanguageSize{
			{Name: "Python", Color: "#3572A5", Size: 200},
		}},
	}

	stats := aggregator.AggregateLanguages(repos)

	require.Equal(t, []domain.LanguageStat{
		{Language: "Python", Color: "#3572A5", LinesCount: 200},
		{Language: "Go", Color: "#00ADD8", LinesCount: 125},
		{Language: "Shell", Color: "#89e051", LinesCount: 50},
		{Language: "TypeScript", Color: "#3178c6", LinesCount: 50},
	}, stats)

	var in, out int64
	for _, r := range repos {
		for _, l := range r.Languages {
			in += l.Size
		}
	}
	for _, s := range stats {
		out += s.LinesCount
	}
	require.Equal(t, in, out)
}
