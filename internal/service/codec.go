package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Samreen555/huffman"
	"github.com/Samreen555/huffman/internal/repo"
	"github.com/Samreen555/huffman/pkg/logger"
)

// CodecService builds codec sessions and decodes streams against stored
// ones.
type CodecService struct {
	repo   repo.SessionRepo
	logger logger.Logger
}

func NewCodecService(r repo.SessionRepo, l logger.Logger) *CodecService {
	return &CodecService{repo: r, logger: l}
}

// Create runs the codec pipeline over text and stores the resulting
// session under a fresh id.
func (s *CodecService) Create(text string) (*repo.Session, error) {
	if text == "" {
		return nil, errors.New("text is required")
	}
	c, err := huffman.New(text)
	if err != nil {
		return nil, err
	}
	sess := &repo.Session{ID: uuid.NewString(), Codec: c}
	if err := s.repo.Save(sess); err != nil {
		return nil, err
	}
	s.logger.Infof("session created: %s (%d symbols, %d bits)",
		sess.ID, c.Frequencies().Len(), c.EncodedBits())
	return sess, nil
}

func (s *CodecService) GetByID(id string) (*repo.Session, error) {
	return s.repo.FindByID(id)
}

// Decode decodes an encoded bit-stream against the session's retained
// tree.  The stream need not be the one the session produced.
func (s *CodecService) Decode(id, stream string) (string, error) {
	sess, err := s.repo.FindByID(id)
	if err != nil {
		return "", err
	}
	return sess.Codec.Decode(stream)
}
