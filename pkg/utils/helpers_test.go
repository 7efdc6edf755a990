package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, SplitList("Go, SQL, Docker"))
	assert.Equal(t, []string{"Go"}, SplitList("  Go  "))
	assert.Equal(t, []string{"Go", "SQL"}, SplitList("Go,,  ,SQL,"))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "Go, SQL, Docker", JoinList([]string{"Go", "SQL", "Docker"}))
	assert.Equal(t, "", JoinList(nil))
}

func TestListRoundTrip(t *testing.T) {
	items := []string{"English", "Hindi", "Telugu"}
	assert.Equal(t, items, SplitList(JoinList(items)))
}

func TestGenerateRecordIDUnique(t *testing.T) {
	assert.NotEqual(t, GenerateRecordID(), GenerateRecordID())
}

func TestGetStringOrDefault(t *testing.T) {
	assert.Equal(t, "fallback", GetStringOrDefault("", "fallback"))
	assert.Equal(t, "value", GetStringOrDefault("value", "fallback"))
}
