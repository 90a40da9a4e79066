package usecase

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const gravatarBase = "https://www.gravatar.com/avatar/"

// gravatarURL returns the 200px, PG-rated, "mystery person" gravatar for email.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return gravatarBase + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
