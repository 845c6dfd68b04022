package common

// InteractionType is the kind of event an Interaction row records.
type InteractionType string

const (
	InteractionLike    InteractionType = "like"
	InteractionComment InteractionType = "comment"
	InteractionView    InteractionType = "view"
)

// String returns the string representation
func (it InteractionType) String() string {
	return string(it)
}

// IsValid checks if the interaction type is one of the known kinds
func (it InteractionType) IsValid() bool {
	return it == InteractionLike || it == InteractionComment || it == InteractionView
}

// AllowsContent reports whether rows of this type carry text content.
func (it InteractionType) AllowsContent() bool {
	return it == InteractionComment
}

// InteractionTypes lists every kind, in a stable order.
func InteractionTypes() []InteractionType {
	return []InteractionType{InteractionLike, InteractionComment, InteractionView}
}
