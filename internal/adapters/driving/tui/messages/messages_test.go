package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewSearch, "search"},
		{ViewUnlock, "unlock"},
		{ViewDocDetails, "docdetails"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewSearch_IsZeroValue(t *testing.T) {
	var v ViewType

	assert.Equal(t, ViewSearch, v)
}

func TestSearchCompleted_CarriesChip(t *testing.T) {
	res := &domain.SearchResult{Kind: domain.ResultKindMultiple, Query: "⏰ Expiring"}

	msg := SearchCompleted{Result: res, Chip: "⏰ Expiring"}

	assert.Same(t, res, msg.Result)
	assert.Equal(t, "⏰ Expiring", msg.Chip)
	assert.NoError(t, msg.Err)
}

func TestErrorMessages_WrapCause(t *testing.T) {
	cause := errors.New("store down")

	assert.ErrorIs(t, SuggestionsLoaded{Err: cause}.Err, cause)
	assert.ErrorIs(t, DocumentLoaded{Err: cause}.Err, cause)
	assert.ErrorIs(t, PinToggled{ID: "d1", Err: cause}.Err, cause)
	assert.ErrorIs(t, UnlockCompleted{Err: cause}.Err, cause)
	assert.ErrorIs(t, ErrorOccurred{Err: cause}.Err, cause)
}
