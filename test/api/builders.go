package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	rand.Read(bytes)
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// GenerateRunID returns a short unique marker, logged by the suites so one
// spec's interactions can be found in a shared CI log stream.
func GenerateRunID() string {
	return generateRandomName("run")
}
