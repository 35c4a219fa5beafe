package kbService

import (
	"BluewudSupport/internal/api/kb"
	"BluewudSupport/internal/knowledge"
	contextPkg "BluewudSupport/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IKbService interface {
	Reload(ctx context.Context) (kb.ReloadResponse, error)
	Stats(ctx context.Context) (kb.StatsResponse, error)
}

type kbService struct {
	log   *logrus.Logger
	store knowledge.IStore
}

func New(log *logrus.Logger, store knowledge.IStore) IKbService {
	return &kbService{
		log:   log,
		store: store,
	}
}

func (s *kbService) Reload(ctx context.Context) (kb.ReloadResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	snap, err := s.store.Reload(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Knowledge base reload request failed")
		return kb.ReloadResponse{}, err
	}

	return kb.ReloadResponse{
		Message:    "Knowledge base reloaded",
		Source:     snap.Source,
		TotalFaqs:  snap.TotalFaqs(),
		Products:   len(snap.Products),
		ReloadedAt: snap.LoadedAt,
	}, nil
}

func (s *kbService) Stats(_ context.Context) (kb.StatsResponse, error) {
	snap := s.store.Snapshot()

	return kb.StatsResponse{
		Source:     snap.Source,
		Categories: len(snap.Categories),
		TotalFaqs:  snap.TotalFaqs(),
		Products:   len(snap.Products),
		Aliases:    len(snap.Aliases),
		LoadedAt:   snap.LoadedAt,
	}, nil
}
