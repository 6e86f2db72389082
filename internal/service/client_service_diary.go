// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/internal/translator"
	"github.com/MKhiriev/go-abroad-journal/models"
)

type clientDiaryService struct {
	gateway    adapter.DiaryGateway
	collection *store.DiaryCollection
	owner      models.User
	now        func() time.Time

	logger *logger.Logger
}

// NewClientDiaryService returns the diary of owner backed by gateway and
// collection.
func NewClientDiaryService(gateway adapter.DiaryGateway, collection *store.DiaryCollection, owner models.User, logger *logger.Logger) ClientDiaryService {
	return &clientDiaryService{
		gateway:    gateway,
		collection: collection,
		owner:      owner,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *clientDiaryService) Load(ctx context.Context) error {
	s.collection.BeginLoad()

	list, err := s.gateway.List(ctx)
	if err != nil {
		s.collection.FailLoad()
		s.logger.Err(err).Str("func", "*clientDiaryService.Load").Msg("error loading diaries")
		return fmt.Errorf("load diaries: %w", mapAdapterError(err))
	}

	s.collection.FinishLoad(translator.ToDomainList(list.Diaries))
	s.logger.Debug().Int("count", len(list.Diaries)).Msg("diaries loaded")
	return nil
}

func (s *clientDiaryService) Create(ctx context.Context, draft models.EntryDraft) (models.DiaryEntry, error) {
	payload := translator.ToRemoteCreatePayload(draft, s.owner.UserID)

	record, err := s.gateway.Create(ctx, payload)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientDiaryService.Create").Msg("error creating diary")
		return models.DiaryEntry{}, fmt.Errorf("create diary: %w", mapAdapterError(err))
	}

	entry := translator.ToDomain(record)
	if record.CreatedAt.IsZero() {
		// backend did not echo created_at
		now := s.now()
		entry.CreatedAt, entry.UpdatedAt = now, now
		entry.Date = draft.Date
		if entry.Date == "" {
			entry.Date = now.UTC().Format(models.DateLayout)
		}
	}

	s.collection.Prepend(entry)
	return entry, nil
}

func (s *clientDiaryService) Update(ctx context.Context, id string, patch models.EntryPatch) (models.DiaryEntry, error) {
	current, ok := s.collection.Get(id)
	if !ok {
		return models.DiaryEntry{}, fmt.Errorf("update diary %q: %w", id, store.ErrEntryNotFound)
	}
	if patch.IsEmpty() {
		return current, nil
	}
	if patch.Category != nil {
		category := models.CanonicalCategory(*patch.Category)
		patch.Category = &category
	}

	if _, err := s.gateway.Update(ctx, id, translator.ToRemoteUpdatePayload(patch)); err != nil {
		s.logger.Err(err).Str("func", "*clientDiaryService.Update").Str("id", id).Msg("error updating diary")
		return models.DiaryEntry{}, fmt.Errorf("update diary %q: %w", id, mapAdapterError(err))
	}

	entry, err := s.collection.Patch(id, patch, s.now())
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("update diary %q: %w", id, err)
	}

	return entry, nil
}

func (s *clientDiaryService) Get(ctx context.Context, id string) (models.DiaryEntry, error) {
	if strings.TrimSpace(id) == "" {
		return models.DiaryEntry{}, ErrInvalidEntryID
	}

	record, err := s.gateway.Get(ctx, id)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("get diary %q: %w", id, mapAdapterError(err))
	}

	return translator.ToDomain(record), nil
}

func (s *clientDiaryService) Delete(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrInvalidEntryID
	}

	resp, err := s.gateway.Delete(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientDiaryService.Delete").Str("id", id).Msg("error deleting diary")
		return "", fmt.Errorf("delete diary %q: %w", id, mapAdapterError(err))
	}

	return resp.Message, nil
}

func (s *clientDiaryService) Entries() []models.DiaryEntry {
	return s.collection.Entries()
}

func (s *clientDiaryService) State() store.CollectionState {
	return s.collection.State()
}
