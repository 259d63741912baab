package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

const uriScheme = "filesafe://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "profiles",
		Name:        "profiles",
		Description: "Family members in the vault",
		MIMEType:    "application/json",
	}, s.handleProfilesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "profiles/{profileId}/documents",
		Name:        "profile-documents",
		Description: "Documents owned by one family member",
		MIMEType:    "application/json",
	}, s.handleProfileDocumentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document",
		Description: "Every field of one document",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)
}

func (s *Server) handleProfilesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if err := s.checkVault(ctx); err != nil {
		return nil, err
	}
	profiles, err := s.ports.Profile.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	infos := make([]*ProfileOutput, len(profiles))
	for i := range profiles {
		infos[i] = profileOutput(&profiles[i])
	}
	return jsonResource(req.Params.URI, infos)
}

func (s *Server) handleProfileDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	profileID := extractProfileID(req.Params.URI)
	if profileID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err := s.checkVault(ctx); err != nil {
		return nil, err
	}

	profile, err := s.ports.Profile.Get(ctx, profileID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	docs, err := s.ports.Document.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	now := s.now()
	infos := make([]DocumentOutput, len(docs))
	for i := range docs {
		infos[i] = documentOutput(&docs[i], profile.Name, now)
	}
	return jsonResource(req.Params.URI, infos)
}

func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err := s.checkVault(ctx); err != nil {
		return nil, err
	}

	doc, err := s.ports.Document.Get(ctx, docID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return jsonResource(req.Params.URI, doc)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractProfileID extracts the profile ID from filesafe://profiles/{profileId}/documents.
func extractProfileID(uri string) string {
	const prefix = uriScheme + "profiles/"
	const suffix = "/documents"

	rest, ok := strings.CutPrefix(uri, prefix)
	if !ok {
		return ""
	}
	id, ok := strings.CutSuffix(rest, suffix)
	if !ok || strings.Contains(id, "/") {
		return ""
	}
	return id
}

// extractDocumentID extracts the document ID from filesafe://documents/{documentId}.
func extractDocumentID(uri string) string {
	id, ok := strings.CutPrefix(uri, uriScheme+"documents/")
	if !ok || strings.Contains(id, "/") {
		return ""
	}
	return id
}
