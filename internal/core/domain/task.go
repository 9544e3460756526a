package domain

// Task is one entry of a resolved build plan: an output identifier and the
// outputs that must exist before it can be produced.
// It uses InternedString for fields that are frequently repeated to save memory.
type Task struct {
	Name         InternedString   `json:"output"`
	Dependencies []InternedString `json:"dependencies"`
}

// UnresolvedModule records a required module that no rule provides.
type UnresolvedModule struct {
	Module     string   `json:"module"`
	RequiredBy []string `json:"required_by"`
}
