// Package services implements the knowledge-store operations on top of an
// entries.Repository.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/monju/internal/common"
	"github.com/dmitrijs2005/monju/internal/logging"
	"github.com/dmitrijs2005/monju/internal/models"
	"github.com/dmitrijs2005/monju/internal/repositories/entries"
)

// EntryService adds, lists, searches and votes on knowledge entries. Every
// call loads the full collection and every mutation saves it back.
type EntryService interface {
	// Add appends a new entry with id len+1 and zero votes.
	Add(ctx context.Context, topic, text string, tags []string) (*models.Entry, error)

	// List returns entries ordered by votes desc, then creation time asc.
	// An empty topic disables the filter.
	List(ctx context.Context, topic string) ([]models.Entry, error)

	// Search matches query case-insensitively against text or topic and
	// keeps stored order. A blank query behaves like List(ctx, "").
	Search(ctx context.Context, query string) ([]models.Entry, error)

	// Vote adds delta to the votes of entry id. It returns
	// common.ErrorNotFound when no entry has that id.
	Vote(ctx context.Context, id int, delta int) (*models.Entry, error)
}

type entryService struct {
	repo entries.Repository
	log  logging.Logger
	now  func() time.Time
}

func NewEntryService(repo entries.Repository, log logging.Logger) EntryService {
	return &entryService{repo: repo, log: log, now: time.Now}
}

func (s *entryService) Add(ctx context.Context, topic, text string, tags []string) (*models.Entry, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	e := models.NewEntry(len(all)+1, topic, text, tags, s.now())
	all = append(all, e)

	if err := s.repo.Save(ctx, all); err != nil {
		return nil, fmt.Errorf("save entries: %w", err)
	}

	s.log.Info(ctx, "entry added", "id", e.ID, "topic", e.Topic)
	return &e, nil
}

func (s *entryService) List(ctx context.Context, topic string) ([]models.Entry, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	result := all
	if topic != "" {
		result = make([]models.Entry, 0, len(all))
		for _, e := range all {
			if e.Topic == topic {
				result = append(result, e)
			}
		}
	}

	models.SortByRank(result)
	return result, nil
}

func (s *entryService) Search(ctx context.Context, query string) ([]models.Entry, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.List(ctx, "")
	}

	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	lower := strings.ToLower(q)
	result := make([]models.Entry, 0, len(all))
	for _, e := range all {
		if e.Matches(lower) {
			result = append(result, e)
		}
	}

	s.log.Debug(ctx, "search done", "query", q, "hits", len(result))
	return result, nil
}

func (s *entryService) Vote(ctx context.Context, id int, delta int) (*models.Entry, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}

		all[i].Votes += delta
		if err := s.repo.Save(ctx, all); err != nil {
			return nil, fmt.Errorf("save entries: %w", err)
		}

		e := all[i]
		s.log.Info(ctx, "entry voted", "id", id, "delta", delta, "votes", e.Votes)
		return &e, nil
	}

	return nil, fmt.Errorf("entry #%d: %w", id, common.ErrorNotFound)
}
