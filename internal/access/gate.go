// Package access is the single source of truth for conversation
// membership decisions. Both the HTTP message endpoints and the realtime
// router call these functions against one store-loaded membership
// snapshot; neither transport carries its own participant checks.
package access

import "pathway.app/server/internal/model"

// CanAccess reports whether the actor may join or read a conversation:
// the actor is either the client, or the user owning the conversation's
// provider side.
func CanAccess(m *model.ConversationMembership, actorID int64) bool {
	if m == nil {
		return false
	}
	if actorID == m.ClientID {
		return true
	}
	return m.ProviderUserID != nil && *m.ProviderUserID == actorID
}

// CanSend reports whether the sender may post under the claimed role.
// The role must match the side the sender is on: a client id presented
// with the PROVIDER role is rejected, and vice versa.
func CanSend(m *model.ConversationMembership, senderID int64, role model.SenderRole) bool {
	if m == nil {
		return false
	}
	switch role {
	case model.SenderRoleClient:
		return senderID == m.ClientID
	case model.SenderRoleProvider:
		return m.ProviderUserID != nil && *m.ProviderUserID == senderID
	}
	return false
}
