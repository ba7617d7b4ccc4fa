package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents an extraction run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	SourceName  string     `json:"source_name"`
	Provider    string     `json:"provider"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ArtifactStep constants for known artifact types
const (
	StepRawText         = "raw_text"
	StepEntities        = "entities"
	StepProfile         = "profile"
	StepRenderedProfile = "rendered_profile"
)
