// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/internal/session"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
)

const (
	msgServerUnavailable = "ネットワークに接続できないか、サーバーが利用できません"
	msgNetworkFailure    = "通信に失敗しました"
	msgAuthFailed        = "メールアドレスまたはパスワードが正しくありません"
	msgCredentials       = "メールアドレスとパスワードは必須です"
	msgEmailTaken        = "このメールアドレスは既に登録されています"
	msgEntryNotFound     = "日記が見つかりません"
	msgEmptyText         = "添削する本文を入力してください"
	msgCorrectionOff     = "AI添削は設定されていません"
	msgUnauthorized      = "認証に失敗しました。再度ログインしてください"
	msgSessionClosed     = "セッションは終了しています"
)

// humanizeError turns err into a message for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrAuthFailed):
		return msgAuthFailed
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgCredentials
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return msgEmailTaken
	case errors.Is(err, store.ErrEntryNotFound):
		return msgEntryNotFound
	case errors.Is(err, service.ErrEmptyText):
		return msgEmptyText
	case errors.Is(err, service.ErrCorrectionDisabled):
		return msgCorrectionOff
	case errors.Is(err, service.ErrUnauthorized):
		return msgUnauthorized
	case errors.Is(err, session.ErrSessionClosed):
		return msgSessionClosed
	}

	if isServerUnavailable(err) {
		return msgServerUnavailable
	}
	if errors.Is(err, adapter.ErrNetworkFailure) {
		return msgNetworkFailure + ": " + err.Error()
	}

	return err.Error()
}

func isServerUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
