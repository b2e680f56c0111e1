package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDTokenIssuer_Issue(t *testing.T) {
	issuer := NewUUIDTokenIssuer()

	token := issuer.Issue()
	require.NotEmpty(t, token)

	_, err := uuid.Parse(token)
	assert.NoError(t, err)
}

func TestUUIDTokenIssuer_IssueIsUnique(t *testing.T) {
	issuer := NewUUIDTokenIssuer()

	seen := make(map[string]struct{})
	for range 100 {
		token := issuer.Issue()
		_, dup := seen[token]
		assert.False(t, dup)
		seen[token] = struct{}{}
	}
}
