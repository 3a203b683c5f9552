package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gabapcia/btcmonitor/internal/addrinfo"
	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/btcaddr"
	"github.com/gabapcia/btcmonitor/internal/notify"
	"github.com/gabapcia/btcmonitor/internal/pkg/logger"
	"github.com/gabapcia/btcmonitor/internal/pkg/validator"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "failed to write response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", "status", status, "error", err)
	}
	writeJSON(ctx, w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(errInvalidBody, err)
	}
	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := s.deps.Registry.List(ctx)
	if err != nil {
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	addresses := make([]string, 0, len(entries))
	for _, e := range entries {
		addresses = append(addresses, e.Address)
	}

	settings := s.currentSettings()
	resp := statusResponse{
		Monitoring:           s.deps.Watcher.Running(),
		AddressesCount:       len(addresses),
		Addresses:            addresses,
		CheckIntervalSeconds: int64(s.deps.Watcher.Interval() / time.Second),
		NotifyChannels:       settings.Channels,
		EmailConfigured:      settings.Has(notify.ChannelEmail) && settings.SMTP.Configured(),
	}
	if report, ok := s.deps.Watcher.LastReport(); ok {
		resp.LastCycle = newCycleResponse(report)
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

func (s *Server) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := s.deps.Registry.List(ctx)
	if err != nil {
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	resp := make([]addressResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, newAddressResponse(e))
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

func (s *Server) handleAddAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addAddressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	entry, created, err := s.deps.Registry.Register(ctx, req.Address)
	switch {
	case errors.Is(err, btcaddr.ErrInvalidAddress):
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	case err != nil:
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		logger.Info(ctx, "address added", "address", entry.Address, "kind", entry.Kind)
	}

	writeJSON(ctx, w, status, newAddressResponse(entry))
}

func (s *Server) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info, err := s.deps.Inspector.Lookup(ctx, r.PathValue("address"))
	switch {
	case errors.Is(err, btcaddr.ErrInvalidAddress):
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	case errors.Is(err, addrinfo.ErrLookupFailed):
		writeError(ctx, w, http.StatusBadGateway, err)
		return
	case err != nil:
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newInfoResponse(info))
}

func (s *Server) handleRemoveAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address := r.PathValue("address")

	err := s.deps.Registry.Unregister(ctx, address)
	switch {
	case errors.Is(err, addrregistry.ErrAddressNotMonitored):
		writeError(ctx, w, http.StatusNotFound, err)
		return
	case err != nil:
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	logger.Info(ctx, "address removed", "address", address)
	writeJSON(ctx, w, http.StatusOK, map[string]string{"address": address, "status": "removed"})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := s.configView(ctx, s.currentSettings())
	if err != nil {
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

// handleUpdateConfig validates the whole request before applying any of it.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req configRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	s.configMu.Lock()
	defer s.configMu.Unlock()

	plan, err := s.planConfig(req)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	notifier, err := s.newNotifier(plan.settings)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	if err := s.deps.Watcher.SetInterval(plan.interval); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	s.deps.Alerter.SetNotifier(notifier)
	s.settings = plan.settings

	if plan.addresses != nil {
		if err := s.reconcile(ctx, plan.addresses); err != nil {
			writeError(ctx, w, http.StatusInternalServerError, err)
			return
		}
	}

	logger.Info(ctx, "configuration updated",
		"interval", plan.interval,
		"channels", plan.settings.Channels,
	)

	resp, err := s.configView(ctx, plan.settings)
	if err != nil {
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

type configPlan struct {
	interval  time.Duration
	settings  notify.Settings
	addresses []string // nil keeps the current set
}

// planConfig merges req over the current settings. Must hold configMu.
func (s *Server) planConfig(req configRequest) (configPlan, error) {
	plan := configPlan{
		interval: s.deps.Watcher.Interval(),
		settings: s.settings,
	}

	if req.CheckIntervalSeconds != nil {
		if err := validator.Var(*req.CheckIntervalSeconds, "gt=0"); err != nil {
			return configPlan{}, fmt.Errorf("check_interval_seconds: %w", err)
		}
		plan.interval = time.Duration(*req.CheckIntervalSeconds) * time.Second
	}

	if req.NotifyChannels != nil {
		channels, err := notify.ParseChannels(req.NotifyChannels)
		if err != nil {
			return configPlan{}, err
		}
		if len(channels) == 0 {
			channels = []notify.Channel{notify.ChannelConsole}
		}
		plan.settings.Channels = channels
	}

	if req.EmailConfig != nil {
		smtp := req.EmailConfig.settings()
		if smtp.Password == redacted {
			smtp.Password = s.settings.SMTP.Password
		}
		plan.settings.SMTP = smtp
	}

	if req.Addresses != nil {
		plan.addresses = make([]string, 0, len(req.Addresses))
		var errs []error
		for _, address := range req.Addresses {
			if _, err := btcaddr.Validate(address, s.deps.Params); err != nil {
				errs = append(errs, err)
				continue
			}
			if !slices.Contains(plan.addresses, address) {
				plan.addresses = append(plan.addresses, address)
			}
		}
		if len(errs) > 0 {
			return configPlan{}, errors.Join(errs...)
		}
	}

	return plan, nil
}

// reconcile registers the missing addresses and removes the extra ones.
func (s *Server) reconcile(ctx context.Context, want []string) error {
	entries, err := s.deps.Registry.List(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, e := range entries {
		if slices.Contains(want, e.Address) {
			continue
		}
		if err := s.deps.Registry.Unregister(ctx, e.Address); err != nil && !errors.Is(err, addrregistry.ErrAddressNotMonitored) {
			errs = append(errs, err)
		}
	}

	for _, address := range want {
		if _, _, err := s.deps.Registry.Register(ctx, address); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Server) currentSettings() notify.Settings {
	s.configMu.Lock()
	defer s.configMu.Unlock()

	return s.settings
}

func (s *Server) configView(ctx context.Context, settings notify.Settings) (configResponse, error) {
	entries, err := s.deps.Registry.List(ctx)
	if err != nil {
		return configResponse{}, err
	}

	addresses := make([]string, 0, len(entries))
	for _, e := range entries {
		addresses = append(addresses, e.Address)
	}

	return configResponse{
		Addresses:            addresses,
		CheckIntervalSeconds: int64(s.deps.Watcher.Interval() / time.Second),
		NotifyChannels:       settings.Channels,
		EmailConfig:          newEmailConfig(settings.SMTP),
	}, nil
}
