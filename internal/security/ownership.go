package security

import "videotube-server/internal/model"

// IsOwner : ресурс принадлежит пользователю, сравнение по id
func IsOwner(resourceOwnerID string, actor *model.User) bool {
	if actor == nil || actor.ID == "" {
		return false
	}
	return actor.ID == resourceOwnerID
}
