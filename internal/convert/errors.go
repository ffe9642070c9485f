// Package convert turns a raw project request into a validated project
// description, resolving every field against the metadata catalog.
package convert

import "fmt"

// Field names the request field a validation failure is attributed to.
type Field string

const (
	// FieldType is the project type identifier.
	FieldType Field = "type"
	// FieldBuildTag is the build tag on a resolved project type.
	FieldBuildTag Field = "build-tag"
	// FieldVersion is the platform version.
	FieldVersion Field = "version"
	// FieldPackaging is the packaging identifier.
	FieldPackaging Field = "packaging"
	// FieldLanguage is the language identifier.
	FieldLanguage Field = "language"
	// FieldDependency is a dependency identifier.
	FieldDependency Field = "dependency"
)

// InvalidRequestError reports the first request field that failed
// validation. The message is user-facing and is returned verbatim by the
// request-handling layer.
type InvalidRequestError struct {
	Field   Field
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// errUnknown builds the failure for an identifier the catalog does not know.
func errUnknown(field Field, id string) *InvalidRequestError {
	return &InvalidRequestError{
		Field:   field,
		Message: fmt.Sprintf("Unknown %s '%s' check project metadata", field, id),
	}
}

// errMissingBuildTag builds the failure for a type without a build tag.
func errMissingBuildTag(id string) *InvalidRequestError {
	return &InvalidRequestError{
		Field:   FieldBuildTag,
		Message: fmt.Sprintf("Invalid type '%s' (missing build tag) check project metadata", id),
	}
}

// errBootVersion builds the failure for a malformed or unsupported platform
// version.
func errBootVersion(raw string) *InvalidRequestError {
	return &InvalidRequestError{
		Field:   FieldVersion,
		Message: fmt.Sprintf("Invalid Spring Boot version %s must be %s or higher", raw, minSupportedRaw),
	}
}

// InconsistentCatalogError reports catalog data that violates the
// converter's assumptions, e.g. a build tag with no registered build system.
// It is an internal failure, never caused by user input against a
// well-formed catalog.
type InconsistentCatalogError struct {
	Message string
}

func (e *InconsistentCatalogError) Error() string {
	return "inconsistent metadata catalog: " + e.Message
}
