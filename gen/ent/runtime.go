// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/DurgeshS-25/labpanel-tracker/db/ent/schema"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/biomarker"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/extractjob"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/panel"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/profile"
	"github.com/DurgeshS-25/labpanel-tracker/gen/ent/reportfile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	biomarkerFields := schema.Biomarker{}.Fields()
	_ = biomarkerFields
	// biomarkerDescName is the schema descriptor for name field.
	biomarkerDescName := biomarkerFields[2].Descriptor()
	// biomarker.NameValidator is a validator for the "name" field. It is called by the builders before save.
	biomarker.NameValidator = biomarkerDescName.Validators[0].(func(string) error)
	// biomarkerDescStatus is the schema descriptor for status field.
	biomarkerDescStatus := biomarkerFields[7].Descriptor()
	// biomarker.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	biomarker.StatusValidator = func() func(string) error {
		validators := biomarkerDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// biomarkerDescCategory is the schema descriptor for category field.
	biomarkerDescCategory := biomarkerFields[8].Descriptor()
	// biomarker.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	biomarker.CategoryValidator = biomarkerDescCategory.Validators[0].(func(string) error)
	// biomarkerDescCreatedAt is the schema descriptor for created_at field.
	biomarkerDescCreatedAt := biomarkerFields[9].Descriptor()
	// biomarker.DefaultCreatedAt holds the default value on creation for the created_at field.
	biomarker.DefaultCreatedAt = biomarkerDescCreatedAt.Default.(func() time.Time)
	// biomarkerDescID is the schema descriptor for id field.
	biomarkerDescID := biomarkerFields[0].Descriptor()
	// biomarker.DefaultID holds the default value on creation for the id field.
	biomarker.DefaultID = biomarkerDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	panelFields := schema.Panel{}.Fields()
	_ = panelFields
	// panelDescName is the schema descriptor for name field.
	panelDescName := panelFields[2].Descriptor()
	// panel.NameValidator is a validator for the "name" field. It is called by the builders before save.
	panel.NameValidator = panelDescName.Validators[0].(func(string) error)
	// panelDescStatus is the schema descriptor for status field.
	panelDescStatus := panelFields[5].Descriptor()
	// panel.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	panel.StatusValidator = panelDescStatus.Validators[0].(func(string) error)
	// panelDescSourcePath is the schema descriptor for source_path field.
	panelDescSourcePath := panelFields[6].Descriptor()
	// panel.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	panel.SourcePathValidator = panelDescSourcePath.Validators[0].(func(string) error)
	// panelDescExtractionMethod is the schema descriptor for extraction_method field.
	panelDescExtractionMethod := panelFields[7].Descriptor()
	// panel.ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	panel.ExtractionMethodValidator = panelDescExtractionMethod.Validators[0].(func(string) error)
	// panelDescCreatedAt is the schema descriptor for created_at field.
	panelDescCreatedAt := panelFields[12].Descriptor()
	// panel.DefaultCreatedAt holds the default value on creation for the created_at field.
	panel.DefaultCreatedAt = panelDescCreatedAt.Default.(func() time.Time)
	// panelDescUpdatedAt is the schema descriptor for updated_at field.
	panelDescUpdatedAt := panelFields[13].Descriptor()
	// panel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	panel.DefaultUpdatedAt = panelDescUpdatedAt.Default.(func() time.Time)
	// panel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	panel.UpdateDefaultUpdatedAt = panelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// panelDescID is the schema descriptor for id field.
	panelDescID := panelFields[0].Descriptor()
	// panel.DefaultID holds the default value on creation for the id field.
	panel.DefaultID = panelDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	reportfileFields := schema.ReportFile{}.Fields()
	_ = reportfileFields
	// reportfileDescSourcePath is the schema descriptor for source_path field.
	reportfileDescSourcePath := reportfileFields[2].Descriptor()
	// reportfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	reportfile.SourcePathValidator = reportfileDescSourcePath.Validators[0].(func(string) error)
	// reportfileDescContentHash is the schema descriptor for content_hash field.
	reportfileDescContentHash := reportfileFields[3].Descriptor()
	// reportfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	reportfile.ContentHashValidator = reportfileDescContentHash.Validators[0].(func([]byte) error)
	// reportfileDescFilename is the schema descriptor for filename field.
	reportfileDescFilename := reportfileFields[4].Descriptor()
	// reportfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	reportfile.FilenameValidator = reportfileDescFilename.Validators[0].(func(string) error)
	// reportfileDescFileExt is the schema descriptor for file_ext field.
	reportfileDescFileExt := reportfileFields[5].Descriptor()
	// reportfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	reportfile.FileExtValidator = reportfileDescFileExt.Validators[0].(func(string) error)
	// reportfileDescFileSize is the schema descriptor for file_size field.
	reportfileDescFileSize := reportfileFields[6].Descriptor()
	// reportfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	reportfile.FileSizeValidator = reportfileDescFileSize.Validators[0].(func(int) error)
	// reportfileDescUploadedAt is the schema descriptor for uploaded_at field.
	reportfileDescUploadedAt := reportfileFields[7].Descriptor()
	// reportfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	reportfile.DefaultUploadedAt = reportfileDescUploadedAt.Default.(func() time.Time)
	// reportfileDescID is the schema descriptor for id field.
	reportfileDescID := reportfileFields[0].Descriptor()
	// reportfile.DefaultID holds the default value on creation for the id field.
	reportfile.DefaultID = reportfileDescID.Default.(func() uuid.UUID)
}
