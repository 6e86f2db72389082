// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/models"
)

// ClientServices holds the long-lived client services and builds the
// per-session ones.
type ClientServices struct {
	AuthService ClientAuthService

	gateway    adapter.DiaryGateway
	correction adapter.CorrectionAdapter
	appCfg     config.ClientApp
	logger     *logger.Logger
}

// NewClientServices wires the client services. correction may be nil.
func NewClientServices(storages *store.ClientStorages, gateway adapter.DiaryGateway, correction adapter.CorrectionAdapter, appCfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(storages.Accounts, storages.Sessions, logger),
		gateway:     gateway,
		correction:  correction,
		appCfg:      appCfg,
		logger:      logger,
	}
}

// NewDiary returns a diary service over a fresh collection for user.
func (s *ClientServices) NewDiary(user models.User) ClientDiaryService {
	return NewClientDiaryService(s.gateway, store.NewDiaryCollection(), user, s.logger)
}

// NewCorrection returns the correction service for user.
func (s *ClientServices) NewCorrection(user models.User) ClientCorrectionService {
	return NewClientCorrectionService(s.correction, user, s.appCfg, s.logger)
}
