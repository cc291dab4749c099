package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEntryName(t *testing.T) {
	assert.NoError(t, ValidateEntryName("maps/e1m1.bsp"))
	assert.NoError(t, ValidateEntryName("a.txt"))
	assert.NoError(t, ValidateEntryName("sound/misc/talk.wav"))
	assert.NoError(t, ValidateEntryName("file with spaces.cfg"))

	assert.Error(t, ValidateEntryName(""))
	assert.Error(t, ValidateEntryName("/absolute/path.bsp"))
	assert.Error(t, ValidateEntryName("../escape.bsp"))
	assert.Error(t, ValidateEntryName("maps/../../etc/passwd"))
	assert.Error(t, ValidateEntryName("foo\x00bar"))
	assert.Error(t, ValidateEntryName("maps\\e1m1.bsp"))
	assert.Error(t, ValidateEntryName("."))
	assert.Error(t, ValidateEntryName("./"))
}

func TestValidateEntryNameTraversalVariants(t *testing.T) {
	cases := []string{
		"../",
		"maps/../../../etc/shadow",
		"a/b/c/../../../../tmp/x",
		"..",
	}
	for _, c := range cases {
		assert.Error(t, ValidateEntryName(c), "should reject: %q", c)
	}
}

func TestCleanEntryName(t *testing.T) {
	assert.Equal(t, "maps/e1m1.bsp", CleanEntryName("./maps/e1m1.bsp"))
	assert.Equal(t, "maps/e1m1.bsp", CleanEntryName("maps//e1m1.bsp"))
	assert.Equal(t, "maps/e1m1.bsp", CleanEntryName("maps/./e1m1.bsp"))
	assert.Equal(t, "maps", CleanEntryName("maps/e1m1.bsp/.."))
}

func TestIsWithinDir(t *testing.T) {
	assert.True(t, IsWithinDir(
		"/home/user/out",
		"/home/user/out/maps/e1m1.bsp",
	))
	assert.True(t, IsWithinDir(
		"/home/user/out",
		"/home/user/out",
	))

	assert.False(t, IsWithinDir(
		"/home/user/out",
		"/home/user/other",
	))
	assert.False(t, IsWithinDir(
		"/home/user/out",
		"/etc/passwd",
	))
	assert.False(t, IsWithinDir(
		"/tmp/a",
		"/tmp/ab/c",
	))
}
