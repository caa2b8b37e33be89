package convert

// Status reports whether a conversion was actually performed.
type Status int

const (
	// StatusConverted means the value was converted into the target unit.
	StatusConverted Status = iota
	// StatusUnresolved means the conversion could not be performed and the
	// original quantity was passed through unchanged.
	StatusUnresolved
)

// Result is the tagged outcome of a conversion. Value is always finite and
// safe for downstream arithmetic; when Status is StatusUnresolved it equals
// the input quantity and Reason says why the conversion was skipped.
type Result struct {
	Reason string
	Value  float64
	Status Status
}

// Converted reports whether the conversion was performed.
func (r Result) Converted() bool {
	return r.Status == StatusConverted
}

func converted(value float64) Result {
	return Result{Value: value, Status: StatusConverted}
}

func unresolved(quantity float64, reason string) Result {
	return Result{Value: quantity, Status: StatusUnresolved, Reason: reason}
}

// Convert resolves quantity from one unit to another. Precedence: identity,
// weight table, volume table, then a density bridge when one unit is weight
// and the other volume. A conversion that cannot be resolved is a no-op: the
// original quantity comes back with StatusUnresolved so a single bad unit
// string never blocks the rest of a cost computation.
func Convert(quantity float64, fromUnit, toUnit, ingredientName string) Result {
	from := normalizeUnit(fromUnit)
	to := normalizeUnit(toUnit)

	if from == to {
		return converted(quantity)
	}

	fromWeight, fromIsWeight := weightFactor(from)
	toWeight, toIsWeight := weightFactor(to)
	if fromIsWeight && toIsWeight {
		return converted(quantity * fromWeight / toWeight)
	}

	fromVolume, fromIsVolume := volumeFactor(from)
	toVolume, toIsVolume := volumeFactor(to)
	if fromIsVolume && toIsVolume {
		return converted(quantity * fromVolume / toVolume)
	}

	switch {
	case fromIsVolume && toIsWeight:
		density, ok := lookupDensity(ingredientName)
		if !ok {
			return unresolved(quantity, "no density known for "+ingredientName)
		}
		grams := quantity * fromVolume * density
		return converted(grams / toWeight)
	case fromIsWeight && toIsVolume:
		density, ok := lookupDensity(ingredientName)
		if !ok {
			return unresolved(quantity, "no density known for "+ingredientName)
		}
		milliliters := quantity * fromWeight / density
		return converted(milliliters / toVolume)
	}

	if !fromIsWeight && !fromIsVolume {
		return unresolved(quantity, "unknown unit "+from)
	}
	return unresolved(quantity, "unknown unit "+to)
}
