package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	GetFacets(ctx context.Context) (*dto.QuestionFacetsResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) GetFacets(ctx context.Context) (*dto.QuestionFacetsResponse, error) {
	rows, err := s.repo.FindMetadata(ctx)
	if err != nil {
		log.Error().Err(err).Msg("GetFacets: Failed to load question metadata")
		return nil, fmt.Errorf("load question metadata: %w", err)
	}
	facets := BuildFacets(rows)
	return &facets, nil
}

// BuildFacets collects the distinct non-empty years (newest first), subjects
// and tags (both ascending) in one pass over rows.
func BuildFacets(rows []model.Question) dto.QuestionFacetsResponse {
	years := map[string]struct{}{}
	subjects := map[string]struct{}{}
	tags := map[string]struct{}{}

	for _, row := range rows {
		if y := strings.TrimSpace(row.Year); y != "" {
			years[y] = struct{}{}
		}
		if sub := strings.TrimSpace(row.Subject); sub != "" {
			subjects[sub] = struct{}{}
		}
		for _, tag := range repository.DecodeTags(row.Tags) {
			tags[tag] = struct{}{}
		}
	}

	out := dto.QuestionFacetsResponse{
		Years:    keys(years),
		Subjects: keys(subjects),
		Tags:     keys(tags),
	}
	sort.Strings(out.Subjects)
	sort.Strings(out.Tags)
	sort.Slice(out.Years, func(i, j int) bool { return yearAfter(out.Years[i], out.Years[j]) })
	return out
}

// yearAfter orders numeric years numerically so "100" sorts above "99".
// Non-numeric labels come after all numeric ones, in reverse text order.
func yearAfter(a, b string) bool {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return ai > bi
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a > b
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
