package hdf

// UIReflector is the out-of-scope UI collaborator that generated
// ReflectMembers/ReflectUI methods call into. This module never
// implements it — spec.md §1 places UI/widget toolkits outside the
// toolchain's scope — but the generated code still needs a named
// interface to compile and link against a real implementation.
type UIReflector interface {
	Begin(title string)
	End()
	Text(label string)
	InputScalar(label string, value interface{})
	Checkbox(label string, value *bool)
	Combo(label string, value *int32, options []string)
}
