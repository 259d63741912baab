package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query     string `json:"query" jsonschema:"a plain-language question such as Sara's passport number or what expires next"`
	ProfileID string `json:"profile_id,omitempty" jsonschema:"profile used when the query names no one (default: the current profile)"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	ProfileID string `json:"profile_id,omitempty" jsonschema:"profile to suggest for (default: the current profile)"`
	Run       string `json:"run,omitempty" jsonschema:"a suggestion label to execute instead of listing suggestions"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Suggestions []string      `json:"suggestions,omitempty"`
	Result      *ResultOutput `json:"result,omitempty"`
}

// ExpiringInput is the input schema for the expiring tool.
type ExpiringInput struct {
	Days int `json:"days,omitempty" jsonschema:"look-ahead window in days (default: the configured window)"`
}

// ResultOutput is a search result as returned to the assistant.
type ResultOutput struct {
	Type             string           `json:"type"`
	Query            string           `json:"query,omitempty"`
	HighlightedField string           `json:"highlighted_field,omitempty"`
	Profile          *ProfileOutput   `json:"profile,omitempty"`
	Count            int              `json:"count"`
	Documents        []DocumentOutput `json:"documents"`
}

// ProfileOutput identifies a family member.
type ProfileOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
}

// DocumentOutput summarises one document.
type DocumentOutput struct {
	ID               string `json:"id"`
	ProfileID        string `json:"profile_id"`
	Owner            string `json:"owner,omitempty"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	Number           string `json:"number,omitempty"`
	HighlightedValue string `json:"highlighted_value,omitempty"`
	ExpiryDate       string `json:"expiry_date,omitempty"`
	ExpiryStatus     string `json:"expiry_status,omitempty"`
	Pinned           bool   `json:"pinned,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Answer a plain-language question about the family's documents",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "List quick-search suggestions for a profile, or run one",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "expiring",
		Description: "List documents expiring within a number of days, soonest first",
	}, s.handleExpiring)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, ResultOutput, error) {
	if err := s.checkVault(ctx); err != nil {
		return nil, ResultOutput{}, err
	}
	active, err := s.activeProfile(ctx, input.ProfileID)
	if err != nil {
		return nil, ResultOutput{}, err
	}

	result, err := s.ports.Search.Search(ctx, input.Query, active)
	if err != nil {
		return nil, ResultOutput{}, fmt.Errorf("search: %w", err)
	}
	return nil, s.resultOutput(ctx, result), nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	if err := s.checkVault(ctx); err != nil {
		return nil, SuggestOutput{}, err
	}
	active, err := s.activeProfile(ctx, input.ProfileID)
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	if input.Run != "" {
		result, err := s.ports.Search.RunSuggestion(ctx, input.Run, active)
		if err != nil {
			return nil, SuggestOutput{}, fmt.Errorf("run suggestion: %w", err)
		}
		out := s.resultOutput(ctx, result)
		return nil, SuggestOutput{Result: &out}, nil
	}

	chips, err := s.ports.Search.Suggestions(ctx, active)
	if err != nil {
		return nil, SuggestOutput{}, fmt.Errorf("suggestions: %w", err)
	}
	return nil, SuggestOutput{Suggestions: chips}, nil
}

// handleExpiring handles the expiring tool invocation.
func (s *Server) handleExpiring(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExpiringInput,
) (*mcp.CallToolResult, ResultOutput, error) {
	if err := s.checkVault(ctx); err != nil {
		return nil, ResultOutput{}, err
	}
	if input.Days < 0 {
		return nil, ResultOutput{}, fmt.Errorf("%w: days must not be negative", domain.ErrInvalidInput)
	}
	return nil, s.resultOutput(ctx, s.ports.Search.Expiring(ctx, input.Days)), nil
}

// activeProfile returns the requested profile or the current one.
// An empty vault yields "".
func (s *Server) activeProfile(ctx context.Context, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	p, err := s.ports.Profile.Current(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("current profile: %w", err)
	}
	return p.ID, nil
}

// owners maps profile IDs to names. Failures leave owners blank.
func (s *Server) owners(ctx context.Context) map[string]string {
	profiles, err := s.ports.Profile.List(ctx)
	if err != nil {
		return nil
	}
	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		names[p.ID] = p.Name
	}
	return names
}

func (s *Server) resultOutput(ctx context.Context, r *domain.SearchResult) ResultOutput {
	out := ResultOutput{Documents: []DocumentOutput{}}
	if r == nil {
		out.Type = domain.ResultKindMultiple.String()
		return out
	}
	out.Type = r.Kind.String()
	out.Query = r.Query
	out.HighlightedField = r.HighlightedField
	if r.Profile != nil {
		out.Profile = profileOutput(r.Profile)
	}

	names := s.owners(ctx)
	now := s.now()
	for i := range r.Documents {
		d := documentOutput(&r.Documents[i], names[r.Documents[i].ProfileID], now)
		if r.HighlightedField != "" {
			d.HighlightedValue, _ = r.Documents[i].Field(r.HighlightedField)
		}
		out.Documents = append(out.Documents, d)
	}
	out.Count = len(out.Documents)
	return out
}

func documentOutput(doc *domain.Document, owner string, now time.Time) DocumentOutput {
	number, _ := doc.Field(domain.FieldNumber)
	return DocumentOutput{
		ID:           doc.ID,
		ProfileID:    doc.ProfileID,
		Owner:        owner,
		Type:         string(doc.Type),
		Title:        doc.Title,
		Number:       number,
		ExpiryDate:   doc.ExpiryDate,
		ExpiryStatus: domain.StatusOf(doc.ExpiryDate, now).Describe(),
		Pinned:       doc.IsPinned,
	}
}

func profileOutput(p *domain.Profile) *ProfileOutput {
	return &ProfileOutput{ID: p.ID, Name: p.Name, Relationship: string(p.Relationship)}
}
