package org

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageComposition(t *testing.T) {
	req := JoinRequest{
		OrgName:    "Acme",
		UserEmail:  "u@x.com",
		AdminEmail: "a@x.com",
	}

	msg := req.Message()

	assert.Equal(t, "a@x.com", msg.To)
	assert.Equal(t, `Join Request for "Acme"`, msg.Subject)
	assert.Contains(t, msg.Body, "u@x.com")
	assert.Contains(t, msg.Body, "a@x.com")
	assert.Contains(t, msg.Body, "Acme")
}
