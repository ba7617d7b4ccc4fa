package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/lukas/bewerberprofil/internal/types"
)

// SaveProfile stores the structured candidate profile for a run
func (db *DB) SaveProfile(ctx context.Context, runID uuid.UUID, profile *types.CandidateProfile) error {
	return db.SaveArtifact(ctx, runID, StepProfile, profile)
}

// GetProfileByRunID loads the candidate profile from the database for a run
func (db *DB) GetProfileByRunID(ctx context.Context, runID uuid.UUID) (*types.CandidateProfile, error) {
	content, err := db.GetArtifact(ctx, runID, StepProfile)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// SaveEntities stores the recognized entities for a run
func (db *DB) SaveEntities(ctx context.Context, runID uuid.UUID, entities []types.Entity) error {
	return db.SaveArtifact(ctx, runID, StepEntities, entities)
}

// GetEntitiesByRunID loads the recognized entities from the database for a run
func (db *DB) GetEntitiesByRunID(ctx context.Context, runID uuid.UUID) ([]types.Entity, error) {
	content, err := db.GetArtifact(ctx, runID, StepEntities)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var entities []types.Entity
	if err := json.Unmarshal(content, &entities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entities: %w", err)
	}
	return entities, nil
}
