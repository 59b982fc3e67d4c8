package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/internal/service"
	"github.com/limbo/advent/pkg/entity"
	"github.com/limbo/advent/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Culture  string `json:"culture"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type ConfirmDailyRequest struct {
	ChallengeID string `json:"challenge_id"`
	Mood        string `json:"mood"`
}

type StartChallengeRequest struct {
	ChallengeID string `json:"challenge_id"`
	Mood        string `json:"mood"`
}

type CompleteResponse struct {
	Assignment *entity.Assignment `json:"assignment"`
	Unlocked   []entity.Badge     `json:"unlocked_badges"`
}

type GetAssignmentsResponse struct {
	UserID      string              `json:"uid"`
	Assignments []entity.Assignment `json:"assignments"`
}

func parseMood(raw string) (entity.Mood, error) {
	switch mood := entity.Mood(raw); mood {
	case entity.MoodLow, entity.MoodNeutral, entity.MoodHigh:
		return mood, nil
	default:
		return "", errors.New("unknown mood value")
	}
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
		Culture:  req.Culture,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetDaily(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get daily error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	mood, err := parseMood(r.URL.Query().Get("mood"))
	if err != nil {
		logger.Error("get daily error: invalid mood query param")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "mood must be one of LOW, NEUTRAL, HIGH", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	assignment, err := s.dailyService.GetOrAssign(ctx, uid, mood)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("get daily error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNoChallengesAvailable):
			logger.Error("get daily error: empty challenge catalog")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no active challenges available", nil)
		default:
			logger.Error("get daily error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while assigning daily challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, assignment)
	logger.Info("daily challenge provided")
}

func (s *Server) PreviewDaily(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("preview error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	mood, err := parseMood(r.URL.Query().Get("mood"))
	if err != nil {
		logger.Error("preview error: invalid mood query param")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "mood must be one of LOW, NEUTRAL, HIGH", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.dailyService.Preview(ctx, uid, mood)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("preview error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNoChallengesAvailable):
			logger.Error("preview error: empty challenge catalog")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no active challenges available", nil)
		default:
			logger.Error("preview error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while previewing daily challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenge)
	logger.Info("daily preview provided")
}

func (s *Server) ConfirmDaily(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("confirm error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ConfirmDailyRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("confirm error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	challengeID, err := uuid.Parse(req.ChallengeID)
	if err != nil {
		logger.Error("confirm error: invalid challenge id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id", nil)
		return
	}
	mood, err := parseMood(req.Mood)
	if err != nil {
		logger.Error("confirm error: invalid mood value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "mood must be one of LOW, NEUTRAL, HIGH", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	assignment, err := s.dailyService.Confirm(ctx, uid, challengeID, mood)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("confirm error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrPreviewMismatch):
			logger.Error("confirm error: challenge doesn't match preview")
			httputil.WriteErrorResponse(w, http.StatusConflict, "confirmed challenge doesn't match the current preview", nil)
		case errors.Is(err, errorvalues.ErrNoChallengesAvailable):
			logger.Error("confirm error: empty challenge catalog")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no active challenges available", nil)
		default:
			logger.Error("confirm error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while confirming daily challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, assignment)
	logger.Info("daily challenge confirmed")
}

func (s *Server) StartChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StartChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("start challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	challengeID, err := uuid.Parse(req.ChallengeID)
	if err != nil {
		logger.Error("start challenge error: invalid challenge id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id", nil)
		return
	}
	mood, err := parseMood(req.Mood)
	if err != nil {
		logger.Error("start challenge error: invalid mood value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "mood must be one of LOW, NEUTRAL, HIGH", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	assignment, err := s.dailyService.Start(ctx, uid, challengeID, mood)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("start challenge error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("start challenge error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		default:
			logger.Error("start challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, assignment)
	logger.Info("challenge started")
}

func (s *Server) ClearPending(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("clear pending error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	deleted, err := s.dailyService.ClearPending(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("clear pending error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("clear pending error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while clearing pending assignments", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": deleted})
	logger.Info("pending assignments cleared")
}

func (s *Server) CompleteAssignment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("completion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid assignment id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	assignment, err := s.dailyService.Complete(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAssignmentNotFound):
			logger.Error("completion error: unexist assignment")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "assignment doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("completion error: assignment has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "assignment doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyCompleted):
			logger.Error("completion error: assignment already completed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "assignment already completed", nil)
		default:
			logger.Error("completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing assignment", nil)
		}
		return
	}
	unlocked, err := s.badgeService.EvaluateBadges(ctx, uid)
	if err != nil {
		// Completion already persisted, progress recomputes on the next evaluation
		logger.Error("completion: badge evaluation failed", slog.String("error", err.Error()))
		unlocked = nil
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CompleteResponse{
		Assignment: assignment,
		Unlocked:   unlocked,
	})
	logger.Info("assignment completed")
}

func (s *Server) GetAssignments(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get assignments error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	var assignments []entity.Assignment
	switch status := r.URL.Query().Get("status"); status {
	case "":
		assignments, err = s.dailyService.GetUserAssignments(ctx, uid)
	case string(entity.StatusAssigned), string(entity.StatusCompleted):
		assignments, err = s.dailyService.GetUserAssignmentsByStatus(ctx, uid, entity.CompletionStatus(status))
	default:
		logger.Error("get assignments error: invalid status query param")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "status must be ASSIGNED or COMPLETED", nil)
		return
	}
	if err != nil {
		logger.Error("getting assignments list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting assignments list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetAssignmentsResponse{
		UserID:      uid.String(),
		Assignments: assignments,
	})
	logger.Info("assignments provided")
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.dailyService.Progress(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("get progress error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("get progress error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting progress", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Info("progress provided")
}

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	badges, err := s.badgeService.Catalog(ctx)
	if err != nil {
		logger.Error("get badges error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting badge catalog", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"badges": badges})
	logger.Info("badge catalog provided")
}
