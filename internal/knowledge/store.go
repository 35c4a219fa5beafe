// Package knowledge owns the read-only knowledge base: FAQ categories,
// product catalog, alias table and reply templates. A snapshot is loaded
// once at startup; reload builds a fresh snapshot and swaps it atomically so
// concurrent readers never observe a partially updated catalog.
package knowledge

import (
	"sync/atomic"
	"time"

	"BluewudSupport/internal/entity"
	"BluewudSupport/pkg/s3"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type Snapshot struct {
	Categories []entity.FaqCategory
	Products   []entity.ProductRecord
	Aliases    []entity.NameAlias
	Config     entity.BotConfig
	Messages   entity.Messages

	Source   string
	LoadedAt time.Time
}

func (s *Snapshot) TotalFaqs() int {
	total := 0
	for _, category := range s.Categories {
		total += len(category.Faqs)
	}
	return total
}

type IStore interface {
	Snapshot() *Snapshot
	Reload(ctx context.Context) (*Snapshot, error)
}

type store struct {
	current  atomic.Pointer[Snapshot]
	log      *logrus.Logger
	s3Client s3.ItfS3
}

// New loads the initial snapshot. A failing external source is not fatal:
// the embedded dataset backs every boot, so rankers always see a valid
// snapshot.
func New(log *logrus.Logger, s3Client s3.ItfS3) (IStore, error) {
	st := &store{log: log, s3Client: s3Client}

	snap, err := st.load(context.Background())
	if err != nil {
		log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Knowledge base source failed, falling back to embedded dataset")

		snap, err = loadEmbedded()
		if err != nil {
			return nil, err
		}
	}

	st.current.Store(snap)

	log.WithFields(logrus.Fields{
		"source":     snap.Source,
		"faqs":       snap.TotalFaqs(),
		"categories": len(snap.Categories),
		"products":   len(snap.Products),
	}).Info("Knowledge base loaded")

	return st, nil
}

// NewFromSnapshot wraps an already built snapshot. Test seam.
func NewFromSnapshot(snap *Snapshot) IStore {
	st := &store{}
	st.current.Store(snap)
	return st
}

func (s *store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload builds a new snapshot from the configured source and swaps it in.
// On failure the previous snapshot stays active.
func (s *store) Reload(ctx context.Context) (*Snapshot, error) {
	snap, err := s.load(ctx)
	if err != nil {
		if s.log != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Knowledge base reload failed, keeping current snapshot")
		}
		return nil, err
	}

	s.current.Store(snap)

	if s.log != nil {
		s.log.WithFields(logrus.Fields{
			"source":   snap.Source,
			"faqs":     snap.TotalFaqs(),
			"products": len(snap.Products),
		}).Info("Knowledge base reloaded")
	}

	return snap, nil
}
