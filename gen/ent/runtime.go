// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/closingdesk/contract-extract/db/ent/schema"
	"github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/gen/ent/contractfile"
	"github.com/closingdesk/contract-extract/gen/ent/extractjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescTemplateFamily is the schema descriptor for template_family field.
	contractDescTemplateFamily := contractFields[1].Descriptor()
	// contract.TemplateFamilyValidator is a validator for the "template_family" field. It is called by the builders before save.
	contract.TemplateFamilyValidator = func() func(string) error {
		validators := contractDescTemplateFamily.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(template_family string) error {
			for _, fn := range fns {
				if err := fn(template_family); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescCompleteness is the schema descriptor for completeness field.
	contractDescCompleteness := contractFields[7].Descriptor()
	// contract.DefaultCompleteness holds the default value on creation for the completeness field.
	contract.DefaultCompleteness = contractDescCompleteness.Default.(float32)
	// contractDescNeedsReview is the schema descriptor for needs_review field.
	contractDescNeedsReview := contractFields[8].Descriptor()
	// contract.DefaultNeedsReview holds the default value on creation for the needs_review field.
	contract.DefaultNeedsReview = contractDescNeedsReview.Default.(bool)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[11].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[12].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	contractfileFields := schema.ContractFile{}.Fields()
	_ = contractfileFields
	// contractfileDescSourcePath is the schema descriptor for source_path field.
	contractfileDescSourcePath := contractfileFields[1].Descriptor()
	// contractfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	contractfile.SourcePathValidator = contractfileDescSourcePath.Validators[0].(func(string) error)
	// contractfileDescFileExt is the schema descriptor for file_ext field.
	contractfileDescFileExt := contractfileFields[2].Descriptor()
	// contractfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	contractfile.FileExtValidator = contractfileDescFileExt.Validators[0].(func(string) error)
	// contractfileDescContentHash is the schema descriptor for content_hash field.
	contractfileDescContentHash := contractfileFields[3].Descriptor()
	// contractfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	contractfile.ContentHashValidator = contractfileDescContentHash.Validators[0].(func([]byte) error)
	// contractfileDescTemplateFamily is the schema descriptor for template_family field.
	contractfileDescTemplateFamily := contractfileFields[4].Descriptor()
	// contractfile.TemplateFamilyValidator is a validator for the "template_family" field. It is called by the builders before save.
	contractfile.TemplateFamilyValidator = func() func(string) error {
		validators := contractfileDescTemplateFamily.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(template_family string) error {
			for _, fn := range fns {
				if err := fn(template_family); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractfileDescUploadedAt is the schema descriptor for uploaded_at field.
	contractfileDescUploadedAt := contractfileFields[6].Descriptor()
	// contractfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	contractfile.DefaultUploadedAt = contractfileDescUploadedAt.Default.(func() time.Time)
	// contractfileDescID is the schema descriptor for id field.
	contractfileDescID := contractfileFields[0].Descriptor()
	// contractfile.DefaultID holds the default value on creation for the id field.
	contractfile.DefaultID = contractfileDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[3].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[9].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
}
