package response

// RowActions marks the admin-only affordances on a rendered row. It is
// omitted from the JSON entirely for non-admin requests, never sent disabled.
type RowActions struct {
	CanEdit   bool `json:"can_edit" example:"true"`
	CanDelete bool `json:"can_delete" example:"true"`
}

// AdminActions returns the action set attached to rows for admin requests,
// or nil so the field is dropped from the payload
func AdminActions(isAdmin bool) *RowActions {
	if !isAdmin {
		return nil
	}
	return &RowActions{CanEdit: true, CanDelete: true}
}

// MutationResult reports the outcome of a save or delete command
type MutationResult struct {
	Message string `json:"message" example:"Transaksi berhasil ditambahkan!"`
	ID      int64  `json:"id,omitempty" example:"6"`
	Source  string `json:"source" example:"local"`
}

// Mutation sources
const (
	SourceSheet  = "sheet"
	SourceLocal  = "local"
	SourceSample = "sample"
)
