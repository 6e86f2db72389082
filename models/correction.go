// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Correction is the language model's answer for one piece of entry text.
type Correction struct {
	// CorrectedText is the fully corrected version of the submitted text.
	CorrectedText string `json:"correctedText"`

	// Feedback is a short bulleted list of the key improvements.
	Feedback string `json:"feedback"`
}
