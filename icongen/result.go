package icongen

// Result holds the generated source for one catalog run.
type Result struct {
	// TypeDefinitions is the enum declaration block, one variant per
	// surviving catalog record.
	TypeDefinitions string

	// ClassesImpl is the behavior block: a single exhaustive match mapping
	// each variant to its class-list helper call.
	ClassesImpl string

	// Count is the number of emitted variants. The two blocks always carry
	// exactly Count entries each, in the same order.
	Count int

	// SkippedPlaceholders counts records with no upstream name
	SkippedPlaceholders int

	// SkippedDuplicates counts records whose ReactName was already emitted
	SkippedDuplicates int
}

// Render returns both blocks in emission order: type definitions first, then
// the behavior implementation.
func (r *Result) Render() string {
	return r.TypeDefinitions + "\n" + r.ClassesImpl
}
