package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ReceiptPhoto struct{ ent.Schema }

func (ReceiptPhoto) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_photos"},
	}
}

func (ReceiptPhoto) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("store").Optional(),
		field.Float("total").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Int("item_count").Default(0).NonNegative(),
		// where the original image lives on disk
		field.String("path").NotEmpty(),
		field.String("content_type").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ReceiptPhoto) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE photo -> MANY expenses
		edge.To("expenses", Expense.Type),
	}
}
