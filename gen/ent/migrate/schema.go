// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BiomarkersColumns holds the columns for the "biomarkers" table.
	BiomarkersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,4)"}},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "reference_min", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,4)"}},
		{Name: "reference_max", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,4)"}},
		{Name: "status", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "panel_id", Type: field.TypeUUID},
	}
	// BiomarkersTable holds the schema information for the "biomarkers" table.
	BiomarkersTable = &schema.Table{
		Name:       "biomarkers",
		Columns:    BiomarkersColumns,
		PrimaryKey: []*schema.Column{BiomarkersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "biomarkers_panels_biomarkers",
				Columns:    []*schema.Column{BiomarkersColumns[9]},
				RefColumns: []*schema.Column{PanelsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "biomarker_panel_id",
				Unique:  false,
				Columns: []*schema.Column{BiomarkersColumns[9]},
			},
			{
				Name:    "biomarker_name",
				Unique:  false,
				Columns: []*schema.Column{BiomarkersColumns[1]},
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
		{Name: "pages", Type: field.TypeInt, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extraction_method", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "panel_id", Type: field.TypeUUID, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_panels_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[10]},
				RefColumns: []*schema.Column{PanelsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_profiles_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_report_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{ReportFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11], ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
			{
				Name:    "extractjob_panel_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[10]},
			},
		},
	}
	// PanelsColumns holds the columns for the "panels" table.
	PanelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "collection_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "status", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "extraction_method", Type: field.TypeString},
		{Name: "patient_first_name", Type: field.TypeString, Nullable: true},
		{Name: "patient_last_name", Type: field.TypeString, Nullable: true},
		{Name: "patient_date_of_birth", Type: field.TypeString, Nullable: true},
		{Name: "patient_gender", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// PanelsTable holds the schema information for the "panels" table.
	PanelsTable = &schema.Table{
		Name:       "panels",
		Columns:    PanelsColumns,
		PrimaryKey: []*schema.Column{PanelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "panels_profiles_panels",
				Columns:    []*schema.Column{PanelsColumns[13]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "panel_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PanelsColumns[13], PanelsColumns[11]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ReportFilesColumns holds the columns for the "report_files" table.
	ReportFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ReportFilesTable holds the schema information for the "report_files" table.
	ReportFilesTable = &schema.Table{
		Name:       "report_files",
		Columns:    ReportFilesColumns,
		PrimaryKey: []*schema.Column{ReportFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_files_profiles_files",
				Columns:    []*schema.Column{ReportFilesColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportfile_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ReportFilesColumns[7], ReportFilesColumns[2]},
			},
			{
				Name:    "reportfile_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ReportFilesColumns[7], ReportFilesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BiomarkersTable,
		ExtractJobTable,
		PanelsTable,
		ProfilesTable,
		ReportFilesTable,
	}
)

func init() {
	BiomarkersTable.ForeignKeys[0].RefTable = PanelsTable
	BiomarkersTable.Annotation = &entsql.Annotation{
		Table: "biomarkers",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = PanelsTable
	ExtractJobTable.ForeignKeys[1].RefTable = ProfilesTable
	ExtractJobTable.ForeignKeys[2].RefTable = ReportFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	PanelsTable.ForeignKeys[0].RefTable = ProfilesTable
	PanelsTable.Annotation = &entsql.Annotation{
		Table: "panels",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	ReportFilesTable.ForeignKeys[0].RefTable = ProfilesTable
	ReportFilesTable.Annotation = &entsql.Annotation{
		Table: "report_files",
	}
}
