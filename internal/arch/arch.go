// Package arch classifies the host CPU architecture for image selection.
package arch

import "runtime"

// Class is the architecture class an image policy is keyed on.
type Class string

const (
	// ClassARM covers 64-bit ARM hosts (both common spellings).
	ClassARM Class = "arm"
	// ClassOther covers everything that is not 64-bit ARM.
	ClassOther Class = "other"
)

// Classify maps a raw architecture identifier to a Class.
// Unrecognized strings classify as ClassOther; there is no error path.
func Classify(raw string) Class {
	switch raw {
	case "arm64", "aarch64":
		return ClassARM
	default:
		return ClassOther
	}
}

// Host returns the class of the machine this process runs on.
func Host() Class {
	return Classify(runtime.GOARCH)
}
