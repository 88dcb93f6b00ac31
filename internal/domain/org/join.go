package org

import "fmt"

// JoinRequest is the ephemeral payload of one notification. It is never
// persisted; it lives for a single invocation.
type JoinRequest struct {
	OrgName    string
	UserEmail  string
	AdminEmail string
}

// Message is a composed plaintext email, transport-agnostic.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Message renders the fixed notification template for this request. The
// recipient is always the organization's admin.
func (r JoinRequest) Message() Message {
	return Message{
		To:      r.AdminEmail,
		Subject: fmt.Sprintf("Join Request for %q", r.OrgName),
		Body: fmt.Sprintf(
			"%s has requested to join %q.\n\n"+
				"This notification was sent to %s as the organization admin. "+
				"Review the request from the organization settings page.\n",
			r.UserEmail, r.OrgName, r.AdminEmail,
		),
	}
}
