package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-field-crypt/internal/validators"
	"github.com/MKhiriev/go-field-crypt/models"
)

// ─────────────────────────────────────────────
// Fake: MessageService
// ─────────────────────────────────────────────

type fakeMessageService struct {
	createFn func(ctx context.Context, text string) (models.Message, error)
	getFn    func(ctx context.Context, id int64) (models.Message, error)
	calls    int
}

func (f *fakeMessageService) Create(ctx context.Context, text string) (models.Message, error) {
	f.calls++
	if f.createFn != nil {
		return f.createFn(ctx, text)
	}
	return models.Message{ID: 1, Text: text}, nil
}

func (f *fakeMessageService) Get(ctx context.Context, id int64) (models.Message, error) {
	f.calls++
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.Message{ID: id}, nil
}

func (f *fakeMessageService) ListDecrypted(ctx context.Context) ([]models.Message, error) {
	f.calls++
	return []models.Message{}, nil
}

func (f *fakeMessageService) ListStored(ctx context.Context) ([]models.Message, error) {
	f.calls++
	return []models.Message{}, nil
}

// ─────────────────────────────────────────────
// MessageValidationService
// ─────────────────────────────────────────────

func TestMessageValidationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantErr   error
		wantCalls int
	}{
		{name: "valid", text: "hello", wantCalls: 1},
		{name: "empty", text: "", wantErr: validators.ErrEmptyText},
		{name: "invalid utf8", text: "\xff", wantErr: validators.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &fakeMessageService{}
			svc := NewMessageValidationService().Wrap(inner)

			msg, err := svc.Create(context.Background(), tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.text, msg.Text)
			}
			assert.Equal(t, tt.wantCalls, inner.calls)
		})
	}
}

func TestMessageValidationService_Get(t *testing.T) {
	inner := &fakeMessageService{}
	svc := NewMessageValidationService().Wrap(inner)

	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, validators.ErrInvalidID)
	assert.Zero(t, inner.calls)

	msg, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), msg.ID)
	assert.Equal(t, 1, inner.calls)
}

func TestMessageValidationService_ListsPassThrough(t *testing.T) {
	inner := &fakeMessageService{}
	svc := NewMessageValidationService().Wrap(inner)

	_, err := svc.ListDecrypted(context.Background())
	require.NoError(t, err)
	_, err = svc.ListStored(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
