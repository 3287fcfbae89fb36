package validation

import (
	"timetracker/internal/domain"
)

// ProjectValidator provides validation for Project-related operations
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// ValidateProjectName validates a project name for creation or update
func (pv *ProjectValidator) ValidateProjectName(name string) error {
	validationError := NewValidationError()

	trimmedName := pv.validator.TrimString(name)

	if !pv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("project_name")
		return validationError
	}

	if !pv.validator.IsValidStringLength(trimmedName, DefaultNameMinLength, DefaultNameMaxLength) {
		validationError.AddInvalidLengthError("project_name", trimmedName, DefaultNameMinLength, DefaultNameMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSummary validates a project summary
func (pv *ProjectValidator) ValidateSummary(summary string) error {
	if len(summary) > DefaultSummaryMaxLength {
		validationError := NewValidationError()
		validationError.AddInvalidLengthError("summary", summary, 0, DefaultSummaryMaxLength)
		return validationError
	}
	return nil
}

// ValidateProjectForCreation validates a project for creation
func (pv *ProjectValidator) ValidateProjectForCreation(name, summary string) error {
	if err := pv.ValidateProjectName(name); err != nil {
		return err
	}
	return pv.ValidateSummary(summary)
}

// ValidateProjectForUpdate validates a project for update
func (pv *ProjectValidator) ValidateProjectForUpdate(id int64, name, summary string) error {
	validationError := NewValidationError()

	if !pv.validator.IsValidID(id) {
		validationError.AddInvalidValueError("project_id", id, "must be a positive integer")
	}

	if nameErr := pv.ValidateProjectName(name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if summaryErr := pv.ValidateSummary(summary); summaryErr != nil {
		if summaryValidationErr, ok := summaryErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, summaryValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProject validates a domain.Project object
func (pv *ProjectValidator) ValidateProject(project domain.Project) error {
	validationError := NewValidationError()

	if nameErr := pv.ValidateProjectName(project.Name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if project.ID != 0 && !pv.validator.IsValidID(project.ID) {
		validationError.AddInvalidValueError("project_id", project.ID, "must be a positive integer")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProjectID validates a project ID
func (pv *ProjectValidator) ValidateProjectID(id int64) error {
	if !pv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("project_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidProjectName returns a cleaned project name if valid
func (pv *ProjectValidator) GetValidProjectName(name string) (string, error) {
	if err := pv.ValidateProjectName(name); err != nil {
		return "", err
	}
	return pv.validator.TrimString(name), nil
}
