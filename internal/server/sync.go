package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/mkraev/sellerboard/internal/engine"
	"github.com/mkraev/sellerboard/internal/errs"
	"github.com/mkraev/sellerboard/internal/model"
	"github.com/mkraev/sellerboard/internal/utils"
)

const (
	// отчётное окно по умолчанию — неделя, операционное — фиксированные 60 дней
	defaultReportDays = 7
	operationalDays   = 60
)

type refreshResponse struct {
	ReportCount      int  `json:"report_count"`
	OperationalCount int  `json:"operational_count"`
	Stale            bool `json:"stale"`
}

// RefreshHandler тянет оба окна с Ozon целиком, авто-отмечает конечные
// отправления и публикует снимок. Частичных снимков не бывает: любая
// ошибка сети оставляет предыдущий снимок нетронутым.
func (s *Server) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req model.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	from, to, err := utils.ParseDateRange(req.From, req.To, defaultReportDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	creds, err := s.storage.GetCredentials(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, errs.ErrCredentialsNotSet) {
			http.Error(w, "ozon credentials not set", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	seq := s.snapshots.Begin(user.ID)

	// верхняя граница отчёта — полночь следующего дня, чтобы захватить "сегодня"
	reportTo := to.AddDate(0, 0, 1)
	report, err := s.ozon.FetchPostings(r.Context(), creds, from, reportTo, "")
	if err != nil {
		s.remoteError(w, err)
		return
	}

	now := time.Now().UTC()
	operational, err := s.ozon.FetchPostings(r.Context(), creds, now.AddDate(0, 0, -operationalDays), now, "")
	if err != nil {
		s.remoteError(w, err)
		return
	}

	overrides, err := s.storage.GetOverrides(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	merged := engine.MergeByNumber(report, operational)
	if ids := engine.AutoPackCandidates(merged, overrides); len(ids) > 0 {
		if err := s.storage.SetPacked(r.Context(), user.ID, ids, true); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
	}

	committed := s.snapshots.Commit(user.ID, seq, &engine.Snapshot{
		Report:      report,
		Operational: operational,
		From:        from,
		To:          to,
		FetchedAt:   now,
	})
	if !committed {
		s.deps.Logger.Infof("refresh superseded, discarding result: user=%d seq=%d", user.ID, seq)
	}

	s.writeJSON(w, refreshResponse{
		ReportCount:      len(report),
		OperationalCount: len(operational),
		Stale:            !committed,
	})
}

func (s *Server) remoteError(w http.ResponseWriter, err error) {
	var remote *errs.RemoteError
	if errors.As(err, &remote) {
		s.deps.Logger.Warnf("ozon api error: %v", remote)
		http.Error(w, remote.Error(), http.StatusBadGateway)
		return
	}
	http.Error(w, "fetch failed", http.StatusInternalServerError)
}

// SaveCredentialsHandler проверяет ключи пробным запросом и сохраняет их.
func (s *Server) SaveCredentialsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var creds model.OzonCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.ClientID == "" || creds.APIKey == "" {
		http.Error(w, "client_id and api_key required", http.StatusBadRequest)
		return
	}

	if err := s.ozon.VerifyCredentials(r.Context(), creds); err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			http.Error(w, "credentials rejected by ozon", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "verification failed", http.StatusInternalServerError)
		return
	}

	if err := s.storage.SaveCredentials(r.Context(), user.ID, creds); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
