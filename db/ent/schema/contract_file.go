package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/closingdesk/contract-extract/constants"
	"github.com/closingdesk/contract-extract/db/ent/schema/utils"
)

type ContractFile struct{ ent.Schema }

func (ContractFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contract_file"},
	}
}

func (ContractFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Bytes("content_hash").NotEmpty(),
		field.String("template_family").NotEmpty().
			Validate(utils.EnumValidator(constants.KnownFamilies...)),
		field.UUID("contract_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ContractFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", ExtractJob.Type),
		edge.From("contract", Contract.Type).
			Ref("files").
			Field("contract_id").
			Unique(),
	}
}

func (ContractFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("contract_id"),
	}
}
