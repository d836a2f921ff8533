package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents one pipeline run over one file for data transfer between layers.
type ExtractJob struct {
	ID              uuid.UUID       `json:"id"`
	FileID          uuid.UUID       `json:"file_id"`
	ContractID      *uuid.UUID      `json:"contract_id,omitempty"`
	Format          string          `json:"format"`
	StartedAt       time.Time       `json:"started_at"`
	FinishedAt      *time.Time      `json:"finished_at,omitempty"`
	Status          *string         `json:"status,omitempty"`
	ErrorMessage    *string         `json:"error_message,omitempty"`
	Completeness    *float32        `json:"completeness,omitempty"`
	NeedsReview     bool            `json:"needs_review"`
	RecordJSON      json.RawMessage `json:"record_json,omitempty"`
	MissingRequired json.RawMessage `json:"missing_required,omitempty"`
	ModelName       *string         `json:"model_name,omitempty"`
	ModelParams     json.RawMessage `json:"model_params,omitempty"`
}
