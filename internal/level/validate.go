package level

import "fmt"

// ValidationError contains details about a validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a level for structural problems the editor and loaders
// should never produce. A level with no objects or an immediately-satisfiable
// finish line is degenerate but valid: the simulation runs it fine.
func Validate(l *Level) error {
	if l.Length <= 0 {
		return ValidationError{
			Code:    "NON_POSITIVE_LENGTH",
			Message: fmt.Sprintf("length must be positive, got %d", l.Length),
		}
	}
	if !l.GameMode.Valid() {
		return ValidationError{
			Code:    "UNKNOWN_MODE",
			Message: fmt.Sprintf("unknown game mode %q", l.GameMode),
		}
	}

	seen := make(map[string]bool, len(l.Objects))
	for i, o := range l.Objects {
		if !Known(o.Type) {
			return ValidationError{
				Code:    "UNKNOWN_KIND",
				Message: fmt.Sprintf("object %d: unknown entity kind %q", i, o.Type),
			}
		}
		if o.X < 0 {
			return ValidationError{
				Code:    "NEGATIVE_COLUMN",
				Message: fmt.Sprintf("object %s: column %d < 0", o.ID, o.X),
			}
		}
		if o.Y < 1 {
			return ValidationError{
				Code:    "ROW_BELOW_FLOOR",
				Message: fmt.Sprintf("object %s: row %d < 1", o.ID, o.Y),
			}
		}
		if o.Rotation%90 != 0 || o.Rotation < 0 || o.Rotation >= 360 {
			return ValidationError{
				Code:    "BAD_ROTATION",
				Message: fmt.Sprintf("object %s: rotation %d not in {0,90,180,270}", o.ID, o.Rotation),
			}
		}
		if seen[o.ID] {
			return ValidationError{
				Code:    "DUPLICATE_ID",
				Message: fmt.Sprintf("object ID %q appears more than once", o.ID),
			}
		}
		seen[o.ID] = true
	}

	return nil
}
