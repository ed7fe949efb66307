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

	"github.com/xpenseai/expense-tracker/constants"
	"github.com/xpenseai/expense-tracker/db/ent/schema/utils"
)

type Expense struct{ ent.Schema }

func (Expense) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "expenses"},
	}
}

func (Expense) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("description").NotEmpty(),
		field.Float("amount").
			Positive().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("category").
			Validate(utils.EnumValidator(append(constants.AsStringSlice(), string(constants.Tax))...)),
		// NULL when photo archival failed; the expense stands on its own.
		field.UUID("receipt_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Expense) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY expenses -> ONE receipt photo (FK: expenses.receipt_id)
		edge.From("receipt", ReceiptPhoto.Type).
			Ref("expenses").
			Field("receipt_id").
			Unique(),
	}
}
