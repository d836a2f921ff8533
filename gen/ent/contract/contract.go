// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contract type in the database.
	Label = "contract"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTemplateFamily holds the string denoting the template_family field in the database.
	FieldTemplateFamily = "template_family"
	// FieldPropertyAddress holds the string denoting the property_address field in the database.
	FieldPropertyAddress = "property_address"
	// FieldBuyerNames holds the string denoting the buyer_names field in the database.
	FieldBuyerNames = "buyer_names"
	// FieldSellerNames holds the string denoting the seller_names field in the database.
	FieldSellerNames = "seller_names"
	// FieldPurchasePrice holds the string denoting the purchase_price field in the database.
	FieldPurchasePrice = "purchase_price"
	// FieldCloseOfEscrow holds the string denoting the close_of_escrow field in the database.
	FieldCloseOfEscrow = "close_of_escrow"
	// FieldCompleteness holds the string denoting the completeness field in the database.
	FieldCompleteness = "completeness"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldFieldsJSON holds the string denoting the fields_json field in the database.
	FieldFieldsJSON = "fields_json"
	// FieldRecordText holds the string denoting the record_text field in the database.
	FieldRecordText = "record_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the contract in the database.
	Table = "contract"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "contract_file"
	// FilesInverseTable is the table name for the ContractFile entity.
	// It exists in this package in order to avoid circular dependency with the "contractfile" package.
	FilesInverseTable = "contract_file"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "contract_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_job"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "contract_id"
)

// Columns holds all SQL columns for contract fields.
var Columns = []string{
	FieldID,
	FieldTemplateFamily,
	FieldPropertyAddress,
	FieldBuyerNames,
	FieldSellerNames,
	FieldPurchasePrice,
	FieldCloseOfEscrow,
	FieldCompleteness,
	FieldNeedsReview,
	FieldFieldsJSON,
	FieldRecordText,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TemplateFamilyValidator is a validator for the "template_family" field. It is called by the builders before save.
	TemplateFamilyValidator func(string) error
	// DefaultCompleteness holds the default value on creation for the "completeness" field.
	DefaultCompleteness float32
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Contract queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTemplateFamily orders the results by the template_family field.
func ByTemplateFamily(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateFamily, opts...).ToFunc()
}

// ByPropertyAddress orders the results by the property_address field.
func ByPropertyAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPropertyAddress, opts...).ToFunc()
}

// ByBuyerNames orders the results by the buyer_names field.
func ByBuyerNames(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerNames, opts...).ToFunc()
}

// BySellerNames orders the results by the seller_names field.
func BySellerNames(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSellerNames, opts...).ToFunc()
}

// ByPurchasePrice orders the results by the purchase_price field.
func ByPurchasePrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchasePrice, opts...).ToFunc()
}

// ByCloseOfEscrow orders the results by the close_of_escrow field.
func ByCloseOfEscrow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCloseOfEscrow, opts...).ToFunc()
}

// ByCompleteness orders the results by the completeness field.
func ByCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleteness, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByRecordText orders the results by the record_text field.
func ByRecordText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
