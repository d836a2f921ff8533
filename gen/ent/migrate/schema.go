// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractColumns holds the columns for the "contract" table.
	ContractColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "template_family", Type: field.TypeString},
		{Name: "property_address", Type: field.TypeString, Nullable: true},
		{Name: "buyer_names", Type: field.TypeString, Nullable: true},
		{Name: "seller_names", Type: field.TypeString, Nullable: true},
		{Name: "purchase_price", Type: field.TypeFloat64, Nullable: true},
		{Name: "close_of_escrow", Type: field.TypeTime, Nullable: true},
		{Name: "completeness", Type: field.TypeFloat32, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "fields_json", Type: field.TypeJSON, Nullable: true},
		{Name: "record_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContractTable holds the schema information for the "contract" table.
	ContractTable = &schema.Table{
		Name:       "contract",
		Columns:    ContractColumns,
		PrimaryKey: []*schema.Column{ContractColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contract_template_family_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContractColumns[1], ContractColumns[11]},
			},
			{
				Name:    "contract_needs_review",
				Unique:  false,
				Columns: []*schema.Column{ContractColumns[8]},
			},
		},
	}
	// ContractFileColumns holds the columns for the "contract_file" table.
	ContractFileColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "template_family", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "contract_id", Type: field.TypeUUID, Nullable: true},
	}
	// ContractFileTable holds the schema information for the "contract_file" table.
	ContractFileTable = &schema.Table{
		Name:       "contract_file",
		Columns:    ContractFileColumns,
		PrimaryKey: []*schema.Column{ContractFileColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contract_file_contract_files",
				Columns:    []*schema.Column{ContractFileColumns[6]},
				RefColumns: []*schema.Column{ContractColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contractfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ContractFileColumns[3]},
			},
			{
				Name:    "contractfile_contract_id",
				Unique:  false,
				Columns: []*schema.Column{ContractFileColumns[6]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "completeness", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "record_json", Type: field.TypeJSON, Nullable: true},
		{Name: "missing_required", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "contract_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_contract_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{ContractColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_contract_file_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{ContractFileColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13]},
			},
			{
				Name:    "extractjob_contract_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractTable,
		ContractFileTable,
		ExtractJobTable,
	}
)

func init() {
	ContractTable.Annotation = &entsql.Annotation{
		Table: "contract",
	}
	ContractFileTable.ForeignKeys[0].RefTable = ContractTable
	ContractFileTable.Annotation = &entsql.Annotation{
		Table: "contract_file",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = ContractTable
	ExtractJobTable.ForeignKeys[1].RefTable = ContractFileTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
}
