package provision

// Step identifies a provisioning state. Values are the step names sent on
// progress events.
type Step string

const (
	StepValidate  Step = "validate"
	StepFolder    Step = "folder"
	StepCopy      Step = "copy"
	StepDuplicate Step = "duplicate"
	StepUpdate    Step = "update"
	StepProtect   Step = "protect"
	StepFormulas  Step = "formulas"
	StepSave      Step = "save"
	StepComplete  Step = "complete"
	StepError     Step = "error"
)

// Terminal reports whether no state follows s.
func (s Step) Terminal() bool {
	return s == StepComplete || s == StepError
}

const (
	// GenericFailureMessage is sent when an error carries no usable text.
	GenericFailureMessage = "Failed to generate caption bank"
	completeMessage       = "Caption bank created successfully"
)
