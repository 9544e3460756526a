package domain

import "go.trai.ch/zerr"

// ProvidedModule is a logical module made available by a rule's output.
type ProvidedModule struct {
	LogicalName string `json:"logical-name"`
	SourcePath  string `json:"source-path,omitempty"`
	IsInterface bool   `json:"is-interface"`
}

// RequiredModule is a logical module a rule's source imports.
type RequiredModule struct {
	LogicalName  string `json:"logical-name"`
	SourcePath   string `json:"source-path,omitempty"`
	LookupMethod string `json:"lookup-method,omitempty"`
}

// Rule describes one compilation unit as reported by the dependency scanner.
type Rule struct {
	PrimaryOutput string           `json:"primary-output"`
	Provides      []ProvidedModule `json:"provides,omitempty"`
	Requires      []RequiredModule `json:"requires,omitempty"`
}

// ScanDocument is the P1689 dependency description produced by the scanner.
type ScanDocument struct {
	Revision int    `json:"revision"`
	Rules    []Rule `json:"rules"`
	Version  int    `json:"version"`
}

// P1689Version is the format version written by this tool.
const P1689Version = 1

// Validate rejects rules without a primary output and rules that share one.
// The resolver assumes both invariants hold.
func (d *ScanDocument) Validate() error {
	seen := make(map[string]int, len(d.Rules))
	for i := range d.Rules {
		output := d.Rules[i].PrimaryOutput
		if output == "" {
			return zerr.With(zerr.Wrap(ErrMissingPrimaryOutput, "invalid scan document"), "rule_index", i)
		}
		if first, ok := seen[output]; ok {
			err := zerr.With(zerr.Wrap(ErrDuplicateRuleOutput, "invalid scan document"), "output", output)
			err = zerr.With(err, "first_rule", first)
			return zerr.With(err, "rule_index", i)
		}
		seen[output] = i
	}
	return nil
}

// Merge appends the rules of other documents after d's rules, in order.
func (d *ScanDocument) Merge(others ...*ScanDocument) {
	for _, o := range others {
		if o == nil {
			continue
		}
		d.Rules = append(d.Rules, o.Rules...)
	}
}
