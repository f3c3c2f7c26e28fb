package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, info, "roster")
	assert.Contains(t, info, Version)
}

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "abc1234", short("abc1234def5678"))
	assert.Equal(t, "abc", short("abc"))
}
