package validators

// DefaultLabel is used when a check is issued without WithLabel.
const DefaultLabel = "Feld"

// field holds the optional arguments of a single check.
type field struct {
	label    string
	required bool
	min      *float64
	max      *float64
}

// FieldOption configures a single [RuleValidator.Check] call.
type FieldOption func(*field)

// WithLabel sets the human-readable field name used in messages.
func WithLabel(label string) FieldOption {
	return func(f *field) {
		f.label = label
	}
}

// Required marks the field as mandatory.
func Required() FieldOption {
	return func(f *field) {
		f.required = true
	}
}

// Min sets the lower bound. Numeric rules compare the value,
// pattern rules compare the length in characters.
func Min(bound float64) FieldOption {
	return func(f *field) {
		f.min = &bound
	}
}

// Max sets the upper bound. See [Min].
func Max(bound float64) FieldOption {
	return func(f *field) {
		f.max = &bound
	}
}

func newField(opts []FieldOption) field {
	f := field{label: DefaultLabel}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Option configures a [RuleValidator].
type Option func(*RuleValidator)

// WithCounter binds the persistence collaborator used by Unique.
func WithCounter(c Counter) Option {
	return func(v *RuleValidator) {
		v.counter = c
	}
}
