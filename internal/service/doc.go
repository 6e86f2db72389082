// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the journal.
//
// Client side: [ClientDiaryService] keeps a session's [store.DiaryCollection]
// consistent with the remote diary backend, [ClientCorrectionService] asks
// the correction proxy for feedback, and [ClientAuthService] manages local
// accounts and the remembered session.
//
// Server side: [CorrectionService] turns entry text into a language model
// prompt and reshapes the reply; [AppInfoService] reports the version.
package service
