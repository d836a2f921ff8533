// Code generated by ent, DO NOT EDIT.

package contractfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/closingdesk/contract-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLTE(FieldID, id))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldSourcePath, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldFileExt, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldContentHash, v))
}

// TemplateFamily applies equality check predicate on the "template_family" field. It's identical to TemplateFamilyEQ.
func TemplateFamily(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldTemplateFamily, v))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldContractID, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldUploadedAt, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldContainsFold(FieldSourcePath, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldContainsFold(FieldFileExt, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLTE(FieldContentHash, v))
}

// TemplateFamilyEQ applies the EQ predicate on the "template_family" field.
func TemplateFamilyEQ(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldTemplateFamily, v))
}

// TemplateFamilyNEQ applies the NEQ predicate on the "template_family" field.
func TemplateFamilyNEQ(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNEQ(FieldTemplateFamily, v))
}

// TemplateFamilyIn applies the In predicate on the "template_family" field.
func TemplateFamilyIn(vs ...string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldIn(FieldTemplateFamily, vs...))
}

// TemplateFamilyNotIn applies the NotIn predicate on the "template_family" field.
func TemplateFamilyNotIn(vs ...string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNotIn(FieldTemplateFamily, vs...))
}

// TemplateFamilyGT applies the GT predicate on the "template_family" field.
func TemplateFamilyGT(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGT(FieldTemplateFamily, v))
}

// TemplateFamilyGTE applies the GTE predicate on the "template_family" field.
func TemplateFamilyGTE(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGTE(FieldTemplateFamily, v))
}

// TemplateFamilyLT applies the LT predicate on the "template_family" field.
func TemplateFamilyLT(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLT(FieldTemplateFamily, v))
}

// TemplateFamilyLTE applies the LTE predicate on the "template_family" field.
func TemplateFamilyLTE(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLTE(FieldTemplateFamily, v))
}

// TemplateFamilyContains applies the Contains predicate on the "template_family" field.
func TemplateFamilyContains(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldContains(FieldTemplateFamily, v))
}

// TemplateFamilyHasPrefix applies the HasPrefix predicate on the "template_family" field.
func TemplateFamilyHasPrefix(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldHasPrefix(FieldTemplateFamily, v))
}

// TemplateFamilyHasSuffix applies the HasSuffix predicate on the "template_family" field.
func TemplateFamilyHasSuffix(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldHasSuffix(FieldTemplateFamily, v))
}

// TemplateFamilyEqualFold applies the EqualFold predicate on the "template_family" field.
func TemplateFamilyEqualFold(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEqualFold(FieldTemplateFamily, v))
}

// TemplateFamilyContainsFold applies the ContainsFold predicate on the "template_family" field.
func TemplateFamilyContainsFold(v string) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldContainsFold(FieldTemplateFamily, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNotIn(FieldContractID, vs...))
}

// ContractIDIsNil applies the IsNil predicate on the "contract_id" field.
func ContractIDIsNil() predicate.ContractFile {
	return predicate.ContractFile(sql.FieldIsNull(FieldContractID))
}

// ContractIDNotNil applies the NotNil predicate on the "contract_id" field.
func ContractIDNotNil() predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNotNull(FieldContractID))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.ContractFile {
	return predicate.ContractFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.ContractFile {
	return predicate.ContractFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.ContractFile {
	return predicate.ContractFile(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.ContractFile {
	return predicate.ContractFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.ContractFile {
	return predicate.ContractFile(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContractFile) predicate.ContractFile {
	return predicate.ContractFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContractFile) predicate.ContractFile {
	return predicate.ContractFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContractFile) predicate.ContractFile {
	return predicate.ContractFile(sql.NotPredicates(p))
}
