package redis

import "strconv"

const (
	// KeyPrefixList is the prefix for cached per-owner bookmark lists
	KeyPrefixList = "markd:bookmarks:"
)

// ListKey returns the Redis key for an owner's cached bookmark list
func ListKey(ownerID int64) string {
	return KeyPrefixList + strconv.FormatInt(ownerID, 10)
}
