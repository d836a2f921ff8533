package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Contract represents a merged extraction record for data transfer between layers.
// The common query columns are lifted out of the record for listing/export;
// FieldsJSON carries the full canonical record including provenance.
type Contract struct {
	ID              uuid.UUID       `json:"id"`
	FileID          *uuid.UUID      `json:"file_id,omitempty"`
	TemplateFamily  string          `json:"template_family"`
	PropertyAddress string          `json:"property_address"`
	BuyerNames      string          `json:"buyer_names"`
	SellerNames     string          `json:"seller_names"`
	PurchasePrice   *float64        `json:"purchase_price,omitempty"`
	CloseOfEscrow   *time.Time      `json:"close_of_escrow,omitempty"`
	Completeness    float32         `json:"completeness"`
	NeedsReview     bool            `json:"needs_review"`
	FieldsJSON      json.RawMessage `json:"fields_json,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
