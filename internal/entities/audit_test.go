package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditEventType_Valid(t *testing.T) {
	assert.True(t, AuditEventSweep.Valid())
	assert.True(t, AuditEventUpdate.Valid())
	assert.False(t, AuditEventType("bogus").Valid())
	assert.False(t, AuditEventType("").Valid())
}
