package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/closingdesk/contract-extract/constants"
	"github.com/closingdesk/contract-extract/db/ent/schema/utils"
)

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contract"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("template_family").NotEmpty().
			Validate(utils.EnumValidator(constants.KnownFamilies...)),
		field.String("property_address").Optional(),
		field.String("buyer_names").Optional(),
		field.String("seller_names").Optional(),
		field.Float("purchase_price").Optional().Nillable(),
		field.Time("close_of_escrow").Optional().Nillable(),
		field.Float32("completeness").Default(0),
		field.Bool("needs_review").Default(false),
		field.JSON("fields_json", json.RawMessage{}).
			Optional(),
		field.String("record_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("files", ContractFile.Type),
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("template_family", "created_at"),
		index.Fields("needs_review"),
	}
}
