package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/orgchart/orgchart-backend/internal/database/gensql"
)

type SearchResult struct {
	Rank   int
	Person *gensql.Person
}

// RankPeople returns the people matching q, best match first. People with an equal rank keep their input order. An
// empty query returns people unchanged.
func RankPeople(q string, people []*gensql.Person) []*gensql.Person {
	q = strings.TrimSpace(q)
	if q == "" {
		return people
	}

	results := []*SearchResult{}
	for _, p := range people {
		rank := bestRank(q, p)
		if rank == -1 {
			continue
		}
		results = append(results, &SearchResult{Rank: rank, Person: p})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rank < results[j].Rank
	})

	ret := make([]*gensql.Person, 0, len(results))
	for _, r := range results {
		ret = append(ret, r.Person)
	}
	return ret
}

func bestRank(q string, p *gensql.Person) int {
	best := Match(q, p.FullName)
	for _, val := range []*string{p.Title, p.Email} {
		if val == nil {
			continue
		}
		if rank := Match(q, *val); rank != -1 && (best == -1 || rank < best) {
			best = rank
		}
	}
	return best
}

// Match returns the rank of a match between q and val. 0 means best match. -1 means no match.
func Match(q, val string) int {
	return fuzzy.RankMatchFold(q, val)
}
