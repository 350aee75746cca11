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
)

// Panel is one lab-report submission: biomarkers from a single document.
type Panel struct{ ent.Schema }

func (Panel) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "panels"},
	}
}

func (Panel) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("provider").Optional().Nillable(),
		field.Time("collection_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("status").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("extraction_method").NotEmpty(),
		// optional patient metadata recovered from the document
		field.String("patient_first_name").Optional().Nillable(),
		field.String("patient_last_name").Optional().Nillable(),
		field.String("patient_date_of_birth").Optional().Nillable(),
		field.String("patient_gender").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Panel) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY panels -> ONE profile
		edge.From("profile", Profile.Type).
			Ref("panels").
			Field("profile_id").
			Required().
			Unique(),
		// ONE panel -> MANY biomarkers
		edge.To("biomarkers", Biomarker.Type),
		// ONE panel -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Panel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "created_at"),
	}
}
