package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContractFile represents an ingested document file for data transfer between layers.
type ContractFile struct {
	ID             uuid.UUID  `json:"id"`
	SourcePath     string     `json:"source_path"`
	FileExt        string     `json:"file_ext"`
	ContentHash    []byte     `json:"content_hash"`
	TemplateFamily string     `json:"template_family"`
	ContractID     *uuid.UUID `json:"contract_id,omitempty"`
	UploadedAt     time.Time  `json:"uploaded_at"`
}
