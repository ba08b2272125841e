package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()
	v.CheckNotBlank("  ", "title", "must be provided")
	v.CheckNotBlank("body", "content", "must be provided")
	v.Check(false, "title", "second message is ignored")

	blank := ""
	v.CheckOptionalNotBlank(&blank, "author", "must not be blank")
	v.CheckOptionalNotBlank(nil, "category", "must not be blank")

	assert.False(t, v.IsValid())
	assert.Equal(t, map[string]string{
		"title":  "must be provided",
		"author": "must not be blank",
	}, v.Errors)
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("DevOps", "Otros", "DevOps"))
	assert.False(t, PermittedValue("Cocina", "Otros", "DevOps"))
}
