package deps

import (
	"database/sql"
	"time"

	"github.com/klemart/markd/internal/auth"
	"github.com/klemart/markd/internal/bookmarks"
	"github.com/klemart/markd/internal/logger"
	"github.com/klemart/markd/internal/users"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy

	JWTSecret string             // HMAC secret used by the auth middleware
	DB        *sql.DB            // SQLite handle, used by readiness checks
	Auth      *auth.Service      // signup/signin
	Users     *users.Service     // profile of the authenticated user
	Bookmarks *bookmarks.Service // per-user bookmark CRUD
}
