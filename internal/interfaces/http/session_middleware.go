package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/session"
	"github.com/jhoicas/Roster-api/pkg/jwt"
)

// SessionCookie nombre de la cookie con el token de sesión.
const SessionCookie = "roster_session"

const localSession = "session"

// SessionConfig dependencias del middleware de sesión.
type SessionConfig struct {
	Sessions  *session.Manager
	Languages Languages
	TTL       time.Duration
	// Secret firma el token de la cookie; Issuer se valida al leerlo.
	Secret string
	Issuer string
	Log    zerolog.Logger
}

// SessionMiddleware abre o recupera la sesión de vista del cliente y serializa sus peticiones.
// La cookie lleva un JWT con el ID de sesión; un token inválido o de una sesión ya cerrada abre
// una sesión nueva con el idioma del header Accept-Language.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id string
		if raw := c.Cookies(SessionCookie); raw != "" {
			claims, err := jwt.Parse(cfg.Secret, cfg.Issuer, raw)
			if err != nil {
				cfg.Log.Debug().Err(err).Msg("cookie de sesión descartada")
			} else {
				id = claims.SessionID
			}
		}

		s, created := cfg.Sessions.GetOrCreate(id, cfg.Languages.Match(c.Get(fiber.HeaderAcceptLanguage)))
		if created {
			token, err := jwt.Generate(cfg.Secret, s.ID, s.Language(), cfg.Issuer, cfg.TTL)
			if err != nil {
				cfg.Sessions.Close(s.ID)
				return err
			}
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    token,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Expires:  time.Now().Add(cfg.TTL),
			})
		}
		c.Locals(localSession, s)

		s.Lock()
		defer s.Unlock()
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de SessionMiddleware).
func GetSession(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(localSession).(*session.Session)
	return s
}
