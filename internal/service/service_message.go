package service

import (
	"context"
	"sync"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-field-crypt/internal/logger"
	"github.com/MKhiriev/go-field-crypt/internal/store"
	"github.com/MKhiriev/go-field-crypt/models"
)

// MessageStore is what the message service needs from the storage layer.
// [store.Set] implements it.
type MessageStore interface {
	store.EntityStore[*models.Message]
	store.UnitOfWork
}

type messageService struct {
	messages *EncryptedSet[*models.Message]
	storage  MessageStore
	key      string

	// writes guards the staged buffer from Stage through SaveChanges
	writes sync.Mutex

	logger *logger.Logger
}

// NewMessageService builds a MessageService encrypting with key, a base64
// AES key. Extra options are passed to the underlying [EncryptedSet].
func NewMessageService(storage MessageStore, key string, logger *logger.Logger, opts ...Option) MessageService {
	opts = append([]Option{WithLogger(logger)}, opts...)

	return &messageService{
		messages: NewEncryptedSet[*models.Message](storage, opts...),
		storage:  storage,
		key:      key,
		logger:   logger,
	}
}

func (s *messageService) Create(ctx context.Context, text string) (models.Message, error) {
	log := logger.FromContext(ctx)

	s.writes.Lock()
	defer s.writes.Unlock()

	msg := &models.Message{Text: text}
	if err := s.messages.AddEncryptContext(ctx, msg, s.key); err != nil {
		log.Err(err).Str("func", "messageService.Create").Msg("error staging message")
		return models.Message{}, err
	}

	if _, err := s.storage.SaveChanges(ctx); err != nil {
		log.Err(err).Str("func", "messageService.Create").Msg("error saving message")
		s.storage.Discard()
		return models.Message{}, err
	}

	log.Debug().Str("func", "messageService.Create").Int64("id", msg.ID).Msg("message saved")

	return models.Message{ID: msg.ID, Text: text}, nil
}

func (s *messageService) Get(ctx context.Context, id int64) (models.Message, error) {
	msg, found, err := s.messages.FirstOrDefaultDecryptWhereContext(ctx, sq.Eq{"id": id}, s.key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "messageService.Get").Int64("id", id).Msg("error reading message")
		return models.Message{}, err
	}
	if !found {
		return models.Message{}, ErrMessageNotFound
	}

	return *msg, nil
}

func (s *messageService) ListDecrypted(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.messages.ToListDecryptContext(ctx, s.key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "messageService.ListDecrypted").Msg("error listing messages")
		return nil, err
	}

	return values(msgs), nil
}

func (s *messageService) ListStored(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.storage.List(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "messageService.ListStored").Msg("error listing stored messages")
		return nil, err
	}

	return values(msgs), nil
}

func values(msgs []*models.Message) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *m)
	}
	return out
}
