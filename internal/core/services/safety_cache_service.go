package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	"github.com/PPKK-Project/Tlan/internal/core/domain"
	"github.com/PPKK-Project/Tlan/internal/core/ports"
)

// resultCodeOK is the safety provider's success code.
const resultCodeOK = "00"

// SafetyCacheService holds the latest successfully parsed travel-advisory
// snapshot in process memory. The snapshot is a single atomically swapped
// reference: readers see either the previous complete list or the new
// complete list, never a mix, and no locking is needed beyond the swap.
// It implements portssvc.SafetyCacheSvc.
type SafetyCacheService struct {
	client   ports.SafetyClient
	logger   *slog.Logger
	snapshot atomic.Pointer[[]domain.SafetyEntry]
}

// NewSafetyCacheService creates a new SafetyCacheService with an empty
// snapshot.
func NewSafetyCacheService(client ports.SafetyClient, logger *slog.Logger) *SafetyCacheService {
	return &SafetyCacheService{client: client, logger: logger}
}

// RefreshSafetyCache fetches the advisory document and swaps the snapshot
// when, and only when, the nested response parses completely and the
// provider reports success. Every failure path leaves the previous snapshot
// untouched: an unavailable provider degrades to serving stale data.
func (s *SafetyCacheService) RefreshSafetyCache(ctx context.Context) error {
	doc, err := s.client.FetchAdvisories(ctx)
	if err != nil {
		s.logger.Error("Safety cache refresh failed", slog.String("error", err.Error()))
		return err
	}

	if resp := doc.Response; resp != nil && resp.Header != nil && resp.Header.ResultCode != resultCodeOK {
		s.logger.Error("Safety cache refresh failed",
			slog.String("result_code", resp.Header.ResultCode),
			slog.String("result_msg", resp.Header.ResultMsg),
		)
		return fmt.Errorf("safety provider result code %s: %w", resp.Header.ResultCode, apperrors.ErrProvider)
	}

	entries, ok := doc.Entries()
	if !ok {
		code, msg := doc.ResultStatus()
		s.logger.Error("Safety cache refresh failed",
			slog.String("result_code", code),
			slog.String("result_msg", msg),
		)
		return fmt.Errorf("safety advisory document incomplete (code %s): %w", code, apperrors.ErrDecode)
	}

	// Copy before publishing so later mutations of the decoded document
	// cannot reach concurrent readers.
	list := make([]domain.SafetyEntry, len(entries))
	copy(list, entries)
	s.snapshot.Store(&list)

	s.logger.Info("Safety cache refreshed", slog.Int("countries", len(list)))
	return nil
}

// CachedSafetyList returns the last known-good snapshot. It is empty before
// the first successful fetch and possibly stale after a failed refresh;
// it never fails.
func (s *SafetyCacheService) CachedSafetyList() []domain.SafetyEntry {
	if p := s.snapshot.Load(); p != nil {
		return *p
	}
	return []domain.SafetyEntry{}
}
