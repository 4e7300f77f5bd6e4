package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	restore := SetEnv("BIGTWO_UTIL_TEST", "from-env")
	defer restore()

	assert.Equal(t, "from-env", Getenv("BIGTWO_UTIL_TEST", "fallback"))

	_ = os.Unsetenv("BIGTWO_UTIL_TEST")
	assert.Equal(t, "fallback", Getenv("BIGTWO_UTIL_TEST", "fallback"))
}

func TestSetEnv(t *testing.T) {
	_ = os.Setenv("BIGTWO_UTIL_TEST", "original")

	restore := SetEnv("BIGTWO_UTIL_TEST", "changed")
	assert.Equal(t, "changed", os.Getenv("BIGTWO_UTIL_TEST"))

	restore()
	assert.Equal(t, "original", os.Getenv("BIGTWO_UTIL_TEST"))

	_ = os.Unsetenv("BIGTWO_UTIL_TEST")
	restore = SetEnv("BIGTWO_UTIL_TEST", "changed")
	restore()

	_, found := os.LookupEnv("BIGTWO_UTIL_TEST")
	assert.False(t, found)
}
