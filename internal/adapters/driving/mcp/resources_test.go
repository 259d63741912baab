package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

func TestExtractProfileID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid profile documents URI", "filesafe://profiles/profile-me/documents", "profile-me"},
		{"invalid prefix", "file://profiles/profile-me/documents", ""},
		{"missing documents suffix", "filesafe://profiles/profile-me", ""},
		{"nested path", "filesafe://profiles/a/b/documents", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractProfileID(tt.uri))
		})
	}
}

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid document URI", "filesafe://documents/doc-4", "doc-4"},
		{"invalid prefix", "file://documents/doc-4", ""},
		{"nested path", "filesafe://documents/doc-4/extra", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDocumentID(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleProfilesResource(t *testing.T) {
	env := newTestEnv(t)
	req := readRequest("filesafe://profiles")

	result, err := env.server.handleProfilesResource(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var profiles []ProfileOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &profiles))
	require.Len(t, profiles, 3)
	assert.Equal(t, "Me", profiles[0].Name)
	assert.Equal(t, "Sara", profiles[1].Name)
	assert.Equal(t, "Alex", profiles[2].Name)
}

func TestServer_handleProfileDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists a profile's documents", func(t *testing.T) {
		env := newTestEnv(t)
		req := readRequest("filesafe://profiles/profile-kid1/documents")

		result, err := env.server.handleProfileDocumentsResource(ctx, req)

		require.NoError(t, err)
		var docs []DocumentOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &docs))
		require.Len(t, docs, 2)
		for _, d := range docs {
			assert.Equal(t, "Alex", d.Owner)
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.server.handleProfileDocumentsResource(ctx, readRequest("filesafe://profiles/nobody/documents"))

		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.server.handleProfileDocumentsResource(ctx, readRequest("filesafe://profiles/"))

		assert.Error(t, err)
	})

	t.Run("nil document service", func(t *testing.T) {
		env := newTestEnv(t)
		env.ports.Document = nil

		_, err := env.server.handleProfileDocumentsResource(ctx, readRequest("filesafe://profiles/profile-me/documents"))

		assert.Error(t, err)
	})
}

func TestServer_handleDocumentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns every field", func(t *testing.T) {
		env := newTestEnv(t)

		result, err := env.server.handleDocumentResource(ctx, readRequest("filesafe://documents/doc-9"))

		require.NoError(t, err)
		var doc domain.Document
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &doc))
		assert.Equal(t, "doc-9", doc.ID)
		require.NotEmpty(t, doc.CustomFields)
		assert.Equal(t, "Vehicle", doc.CustomFields[0].Label)
	})

	t.Run("missing document", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.server.handleDocumentResource(ctx, readRequest("filesafe://documents/nope"))

		assert.Error(t, err)
	})

	t.Run("locked vault", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.vault.Initialize(ctx, "246810")
		require.NoError(t, err)
		env.vault.Lock()

		_, err = env.server.handleDocumentResource(ctx, readRequest("filesafe://documents/doc-1"))

		assert.ErrorIs(t, err, domain.ErrVaultLocked)
	})
}
