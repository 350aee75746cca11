package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/db/ent/schema/utils"
)

// Biomarker is one named test result belonging to a panel.
// Reference bounds are nullable so a stored 0 is a real boundary.
type Biomarker struct{ ent.Schema }

func (Biomarker) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "biomarkers"},
	}
}

func (Biomarker) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("panel_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Float("value").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,4)"}),
		field.String("unit").Optional().Nillable(),
		field.Float("reference_min").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,4)"}),
		field.Float("reference_max").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,4)"}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.StatusNormal),
				string(constants.StatusHigh),
				string(constants.StatusLow),
				string(constants.StatusCritical),
			)),
		field.String("category").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Biomarker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("panel", Panel.Type).
			Ref("biomarkers").
			Field("panel_id").
			Required().
			Unique(),
	}
}

func (Biomarker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("panel_id"),
		index.Fields("name"),
	}
}
