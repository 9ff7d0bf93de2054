package ast

import "fmt"

// Detail levels gate which Node fields a parse populates. Each dimension is
// a total order; a field introduced at level L is populated at every level
// >= L. The same traversal serves every combination, so callers trade result
// size against completeness without re-parsing.

// ContextLevel controls semantic classification detail.
type ContextLevel uint8

const (
	ContextNone ContextLevel = iota
	ContextNodeTypesOnly
	ContextNormalized
	ContextNative
)

// LocationLevel controls positional detail.
type LocationLevel uint8

const (
	LocationNone LocationLevel = iota
	LocationInputOnly
	LocationLines
	LocationFull
)

// StructureLevel controls tree-relationship detail.
type StructureLevel uint8

const (
	StructureNone StructureLevel = iota
	StructureMinimal
	StructureFull
)

// PeekLevel controls how much source text each node retains.
type PeekLevel uint8

const (
	PeekNone PeekLevel = iota
	PeekSmart
	PeekFull
	PeekCustom
)

// ExtractionConfig selects the four detail dials for one parse. The zero
// value is the cheapest possible result; DefaultConfig is what interactive
// consumers usually want.
type ExtractionConfig struct {
	Context   ContextLevel
	Location  LocationLevel
	Structure StructureLevel
	Peek      PeekLevel
	PeekSize  int // bytes, only meaningful with PeekCustom
}

// DefaultConfig returns full-detail extraction with smart peeking.
func DefaultConfig() ExtractionConfig {
	return ExtractionConfig{
		Context:   ContextNormalized,
		Location:  LocationFull,
		Structure: StructureFull,
		Peek:      PeekSmart,
	}
}

// ParseContextLevel parses a context level name.
func ParseContextLevel(s string) (ContextLevel, error) {
	switch s {
	case "none":
		return ContextNone, nil
	case "node_types_only", "types":
		return ContextNodeTypesOnly, nil
	case "normalized":
		return ContextNormalized, nil
	case "native":
		return ContextNative, nil
	}
	return 0, fmt.Errorf("unknown context level %q (none, node_types_only, normalized, native)", s)
}

// ParseLocationLevel parses a location level name.
func ParseLocationLevel(s string) (LocationLevel, error) {
	switch s {
	case "none":
		return LocationNone, nil
	case "input_only", "input":
		return LocationInputOnly, nil
	case "lines":
		return LocationLines, nil
	case "full":
		return LocationFull, nil
	}
	return 0, fmt.Errorf("unknown location level %q (none, input_only, lines, full)", s)
}

// ParseStructureLevel parses a structure level name.
func ParseStructureLevel(s string) (StructureLevel, error) {
	switch s {
	case "none":
		return StructureNone, nil
	case "minimal":
		return StructureMinimal, nil
	case "full":
		return StructureFull, nil
	}
	return 0, fmt.Errorf("unknown structure level %q (none, minimal, full)", s)
}

// ParsePeekLevel parses a peek level name. Custom sizes are configured via
// ExtractionConfig.PeekSize, not the level name.
func ParsePeekLevel(s string) (PeekLevel, error) {
	switch s {
	case "none":
		return PeekNone, nil
	case "smart":
		return PeekSmart, nil
	case "full":
		return PeekFull, nil
	case "custom":
		return PeekCustom, nil
	}
	return 0, fmt.Errorf("unknown peek level %q (none, smart, full, custom)", s)
}
