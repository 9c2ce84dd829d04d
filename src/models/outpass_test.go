package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOutpassStatus(t *testing.T) {
	for _, s := range []string{OutpassPending, OutpassApproved, OutpassRejected, OutpassReturned} {
		assert.True(t, ValidOutpassStatus(s), s)
	}
	assert.False(t, ValidOutpassStatus("approved")) // case-sensitive
	assert.False(t, ValidOutpassStatus(""))
	assert.False(t, ValidOutpassStatus("Cancelled"))
}
