package ecode

import "fmt"

const (
	requiredMsg = "required"
	invalidMsg  = "invalid"
	notExistMsg = "does not exist"
	outOfRange  = "out of range"
)

func field(msg string, k []string) string {
	if len(k) > 0 && k[0] != "" {
		return fmt.Sprintf("%s %s", k[0], msg)
	}
	return msg
}

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string { return field(requiredMsg, k) }

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string { return field(invalidMsg, k) }

// FieldOutOfRange returns field out of range message
func FieldOutOfRange(k ...string) string { return field(outOfRange, k) }

// NotExist returns not exist message
func NotExist(k ...string) string { return field(notExistMsg, k) }
