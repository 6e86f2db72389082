// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/config"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/mock"
	"github.com/MKhiriev/go-abroad-journal/internal/utils"
	"github.com/MKhiriev/go-abroad-journal/models"
)

var testTokenCfg = config.ClientApp{
	TokenSignKey:  "secret",
	TokenIssuer:   "journal-test",
	TokenDuration: time.Minute,
}

func TestClientCorrectionService_Correct_SignsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockCorrectionAdapter(ctrl)
	svc := NewClientCorrectionService(m, models.User{UserID: 42}, testTokenCfg, logger.Nop())

	m.EXPECT().Correct(gomock.Any(), gomock.Any(), "i goes").
		DoAndReturn(func(_ context.Context, token, _ string) (models.Correction, error) {
			parsed, err := utils.ValidateAndParseJWTToken(token, "secret", "journal-test")
			require.NoError(t, err)
			assert.Equal(t, int64(42), parsed.UserID)
			return models.Correction{CorrectedText: "I go.", Feedback: "- verb"}, nil
		})

	got, err := svc.Correct(context.Background(), "i goes")
	require.NoError(t, err)
	assert.Equal(t, "I go.", got.CorrectedText)
	assert.True(t, svc.Enabled())
}

func TestClientCorrectionService_Correct_BlankText(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockCorrectionAdapter(ctrl)
	svc := NewClientCorrectionService(m, models.User{UserID: 1}, testTokenCfg, logger.Nop())

	_, err := svc.Correct(context.Background(), "  \n\t")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestClientCorrectionService_Disabled(t *testing.T) {
	svc := NewClientCorrectionService(nil, models.User{UserID: 1}, testTokenCfg, logger.Nop())

	assert.False(t, svc.Enabled())
	_, err := svc.Correct(context.Background(), "text")
	assert.ErrorIs(t, err, ErrCorrectionDisabled)
}

func TestClientCorrectionService_BadTokenConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockCorrectionAdapter(ctrl)
	svc := NewClientCorrectionService(m, models.User{UserID: 1}, config.ClientApp{}, logger.Nop())

	_, err := svc.Correct(context.Background(), "text")
	assert.Error(t, err)
}

func TestClientCorrectionService_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockCorrectionAdapter(ctrl)
	svc := NewClientCorrectionService(m, models.User{UserID: 1}, testTokenCfg, logger.Nop())

	m.EXPECT().Correct(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Correction{}, adapter.ErrUnauthorized)

	_, err := svc.Correct(context.Background(), "text")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, adapter.ErrNetworkFailure)
}
