package banner

import (
	"fmt"
	"strings"
)

// Field selects one line of the info column.
type Field uint8

const (
	UserAtHostname Field = iota
	Os
	Kernel
	Memory
	Processor
	Shell
	Terminal
	RootDisk

	fieldCount
)

var fieldNames = [fieldCount]string{
	UserAtHostname: "UserAtHostname",
	Os:             "Os",
	Kernel:         "Kernel",
	Memory:         "Memory",
	Processor:      "Processor",
	Shell:          "Shell",
	Terminal:       "Terminal",
	RootDisk:       "RootDisk",
}

// labels holds the fixed prefix for every field except UserAtHostname,
// which colors both of its names instead.
var labels = [fieldCount]string{
	Os:        "OS:",
	Kernel:    "Kernel:",
	Memory:    "Memory:",
	Processor: "CPU:",
	Shell:     "Shell:",
	Terminal:  "Terminal:",
	RootDisk:  "Disk:",
}

func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// ParseField matches name against the field names, ignoring case.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for f := range fieldCount {
		if strings.EqualFold(fieldNames[f], name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q (want one of %s)", name, strings.Join(FieldNames(), ", "))
}

// FieldNames lists every field name in canonical order.
func FieldNames() []string {
	return append([]string(nil), fieldNames[:]...)
}

// DefaultFields returns every field in canonical order.
func DefaultFields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := range fieldCount {
		fields = append(fields, f)
	}
	return fields
}
