package service

import (
	"context"
	"errors"
	"time"

	"karirkit/internal/listing"
	"karirkit/internal/logging"
	"karirkit/internal/model"
	"karirkit/internal/repository"
)

// ErrClientIDRequired is returned when the browser has no client id cookie.
var ErrClientIDRequired = errors.New("client id is required")

// PreferenceService stores which list columns a browser has hidden.
type PreferenceService struct {
	repo repository.PreferenceRepository
	log  logging.Logger
	now  func() time.Time
}

func NewPreferenceService(repo repository.PreferenceRepository, log logging.Logger) *PreferenceService {
	if log == nil {
		log = logging.Nop()
	}
	return &PreferenceService{repo: repo, log: log, now: time.Now}
}

// Hidden returns the hidden column keys for resource. The result is nil when
// nothing was saved yet, so callers fall back to column defaults. A failing
// store degrades to defaults rather than breaking the list page.
func (s *PreferenceService) Hidden(ctx context.Context, clientID, resource string, cols []listing.Column) []string {
	if clientID == "" {
		return nil
	}
	p, err := s.repo.Find(ctx, clientID, resource)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warn(ctx, "load column preference failed", "resource", resource, "error", err.Error())
		}
		return nil
	}
	return listing.SanitizeHidden(cols, p.Hidden)
}

// Get returns the effective preference, defaults included.
func (s *PreferenceService) Get(ctx context.Context, clientID, resource string, cols []listing.Column) (*model.ColumnPreference, error) {
	if clientID == "" {
		return nil, ErrClientIDRequired
	}
	p, err := s.repo.Find(ctx, clientID, resource)
	if errors.Is(err, repository.ErrNotFound) {
		hidden := listing.DefaultHidden(cols)
		if hidden == nil {
			hidden = []string{}
		}
		return &model.ColumnPreference{ClientID: clientID, Resource: resource, Hidden: hidden}, nil
	}
	if err != nil {
		return nil, err
	}
	p.Hidden = listing.SanitizeHidden(cols, p.Hidden)
	return p, nil
}

// Save replaces the hidden set. Unknown and locked column keys are dropped.
func (s *PreferenceService) Save(ctx context.Context, clientID, resource string, cols []listing.Column, hidden []string) (*model.ColumnPreference, error) {
	if clientID == "" {
		return nil, ErrClientIDRequired
	}
	p := &model.ColumnPreference{
		ClientID:  clientID,
		Resource:  resource,
		Hidden:    listing.SanitizeHidden(cols, hidden),
		UpdatedAt: s.now().UTC(),
	}
	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "column preference saved", "resource", resource, "hidden", len(saved.Hidden))
	return saved, nil
}

// Reset forgets the preference so column defaults apply again.
func (s *PreferenceService) Reset(ctx context.Context, clientID, resource string) error {
	if clientID == "" {
		return ErrClientIDRequired
	}
	return s.repo.Delete(ctx, clientID, resource)
}
