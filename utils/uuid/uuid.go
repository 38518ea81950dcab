package uuid

import (
	"github.com/google/uuid"
	"strings"
)

// GenUUID 生成不带连字符的uuid
func GenUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenUUID16 生成16位短uuid，用于requestId透传
func GenUUID16() string {
	return GenUUID()[:16]
}
