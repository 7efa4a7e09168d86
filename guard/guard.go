package guard

import (
	"net/url"

	goSession "github.com/MrEthical07/goSession"
)

// Action is the guard's verdict on a navigation.
type Action uint8

const (
	// ActionAllow commits the navigation unchanged.
	ActionAllow Action = iota
	// ActionRedirect aborts the navigation in favor of Decision.Target.
	ActionRedirect
)

// Decision is the outcome of evaluating one route transition.
type Decision struct {
	Action Action
	Target string
}

// Config tunes guard behavior. Zero values fall back to the ERP shell's
// defaults.
type Config struct {
	// SignInPath is where unauthenticated navigations are sent. Default
	// "/signin".
	SignInPath string
	// HomePath is where authenticated users landing on public auth pages
	// are sent. Default "/".
	HomePath string
	// PublicPaths is the fixed allow-list of public entry paths. It is not
	// derived from route metadata. Default: sign-in, sign-up, and the
	// sign-in callback.
	PublicPaths []string
	// EnforcePermissions redirects navigations to routes whose declared
	// permission the session lacks. Off by default: views check
	// permissions themselves and render an access-denied state.
	EnforcePermissions bool
}

// Guard intercepts route transitions and consults the session.
type Guard struct {
	session *goSession.Session
	table   *Table
	cfg     Config
	public  map[string]struct{}
}

// New creates a guard over the given session and route table. A nil table
// uses [DefaultTable].
func New(session *goSession.Session, table *Table, cfg Config) *Guard {
	if table == nil {
		table = DefaultTable()
	}
	if cfg.SignInPath == "" {
		cfg.SignInPath = "/signin"
	}
	if cfg.HomePath == "" {
		cfg.HomePath = "/"
	}
	if cfg.PublicPaths == nil {
		cfg.PublicPaths = []string{"/signin", "/signup", "/signin/callback"}
	}

	public := make(map[string]struct{}, len(cfg.PublicPaths))
	for _, p := range cfg.PublicPaths {
		public[p] = struct{}{}
	}

	return &Guard{session: session, table: table, cfg: cfg, public: public}
}

// Evaluate decides the fate of a navigation to target (a full path,
// optionally with a query string) coming from the given origin path. It is
// synchronous and always completes before the router proceeds.
//
// Decision order: unauthenticated navigation to a protected route redirects
// to sign-in carrying the full requested path in the redirect query
// parameter; an authenticated user landing on a public auth page is sent to
// that redirect parameter or home; everything else is allowed.
func (g *Guard) Evaluate(target, from string) Decision {
	u, err := url.Parse(target)
	if err != nil {
		// An unparsable target cannot be matched to a protected route;
		// let the router's not-found handling deal with it.
		g.session.Metrics().Inc(goSession.MetricGuardAllow)
		return Decision{Action: ActionAllow, Target: target}
	}

	route, _ := g.table.Match(u.Path)
	_, isPublic := g.public[u.Path]
	authenticated := g.session.IsAuthenticated()

	if route.RequiresAuth && !authenticated {
		q := url.Values{"redirect": {target}}
		g.session.Metrics().Inc(goSession.MetricGuardRedirectSignin)
		return Decision{
			Action: ActionRedirect,
			Target: g.cfg.SignInPath + "?" + q.Encode(),
		}
	}

	if authenticated && isPublic {
		dest := u.Query().Get("redirect")
		if dest == "" {
			dest = g.cfg.HomePath
		}
		g.session.Metrics().Inc(goSession.MetricGuardRedirectHome)
		return Decision{Action: ActionRedirect, Target: dest}
	}

	if g.cfg.EnforcePermissions && route.Permission != "" && !g.session.HasPermission(route.Permission) {
		g.session.Metrics().Inc(goSession.MetricGuardRedirectHome)
		return Decision{Action: ActionRedirect, Target: g.cfg.HomePath}
	}

	g.session.Metrics().Inc(goSession.MetricGuardAllow)
	return Decision{Action: ActionAllow, Target: target}
}
