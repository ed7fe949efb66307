package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/xpenseai/expense-tracker/constants"
	"github.com/xpenseai/expense-tracker/db/ent/schema/utils"
)

type Budget struct{ ent.Schema }

func (Budget) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "budgets"},
	}
}

func (Budget) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// one budget per category
		field.String("category").
			Unique().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.Float("amount").
			Positive().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("period_type").
			Default("MONTHLY").
			Validate(utils.EnumValidator("MONTHLY", "WEEKLY", "YEARLY", "CUSTOM")),
		field.Time("current_period_start").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("next_reset_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Bool("auto_reset").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
