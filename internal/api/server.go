package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/advent/internal/service"
)

type Server struct {
	mx           *chi.Mux
	userService  service.UserServiceI
	dailyService service.DailyChallengeServiceI
	badgeService service.BadgeServiceI
	jwtService   JWTServiceI
}

type ServicesList struct {
	UserService  service.UserServiceI
	DailyService service.DailyChallengeServiceI
	BadgeService service.BadgeServiceI
	JwtService   JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:           chi.NewMux(),
		userService:  servicesOptions.UserService,
		dailyService: servicesOptions.DailyService,
		badgeService: servicesOptions.BadgeService,
		jwtService:   servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/daily", s.GetDaily)
			r.Get("/daily/preview", s.PreviewDaily)
			r.Post("/daily/confirm", s.ConfirmDaily)
			r.Post("/challenges/start", s.StartChallenge)
			r.Delete("/assignments/pending", s.ClearPending)
			r.Put("/assignments/{id}/complete", s.CompleteAssignment)
			r.Get("/assignments", s.GetAssignments)
			r.Get("/progress", s.GetProgress)
			r.Get("/badges", s.GetBadges)
		})
	})
	return http.ListenAndServe(address, s.mx)
}
