package drawsteel

import "fmt"

// NoticeKind classifies a diagnostic raised while parsing.
type NoticeKind string

// NoticeKind constants
const (
	NoticeUnknownDamageType NoticeKind = "unknown_damage_type"
	NoticeUnknownMovement   NoticeKind = "unknown_movement"
	NoticeUnknownAncestry   NoticeKind = "unknown_ancestry"
	NoticeCustomAncestry    NoticeKind = "custom_ancestry"
	NoticeEmptyBlock        NoticeKind = "empty_block"
	NoticeMissingHeader     NoticeKind = "missing_header"
)

// Notice is a non-fatal diagnostic. Parsers return them instead of failing.
type Notice struct {
	Kind  NoticeKind `json:"kind"`
	Field string     `json:"field"`
	Value string     `json:"value"`
}

// String implements fmt.Stringer
func (n Notice) String() string {
	return fmt.Sprintf("%s %s=%q", n.Kind, n.Field, n.Value)
}
