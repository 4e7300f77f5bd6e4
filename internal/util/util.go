package util

import (
	"fmt"

	"github.com/google/uuid"
)

// RandomDisplayName returns a unique throwaway display name, mostly useful
// in tests
func RandomDisplayName() string {
	return fmt.Sprintf("player-%s", uuid.New())
}
