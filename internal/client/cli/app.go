package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/avasiliev/fittrack/internal/client/api"
	"github.com/avasiliev/fittrack/internal/client/config"
	"github.com/avasiliev/fittrack/internal/client/services"
	"github.com/avasiliev/fittrack/internal/client/storage"
	"github.com/avasiliev/fittrack/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client: configuration, the open database, the
// services the REPL dispatches to, and the current screen group used by
// the redirect rule.
type App struct {
	config     *config.Config
	log        logging.Logger
	db         *sql.DB
	session    services.SessionService
	catalog    services.CatalogService
	favourites services.FavouritesService
	theme      services.ThemeService
	screen     services.ScreenGroup
	reader     *bufio.Reader
}

// NewApp opens the client database, runs migrations, and wires the gateways
// and services according to cfg.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	authGateway := api.NewHTTPAuthGateway(c.AuthEndpointAddr, c.RequestTimeout, log)
	catalogGateway := api.NewHTTPCatalogGateway(c.CatalogEndpointAddr, c.CatalogAPIKey, c.RequestTimeout, log)

	repo := storage.NewSQLiteRepository(db)

	return &App{
		config:     c,
		log:        log,
		db:         db,
		session:    services.NewSessionService(authGateway, db, log),
		catalog:    services.NewCatalogService(catalogGateway, log),
		favourites: services.NewFavouritesService(repo, log),
		theme:      services.NewThemeService(repo, log),
		screen:     services.GroupEntry,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

// navigate applies the redirect rule for the current authentication state and
// the screen the caller wants to land on. It returns the screen the user
// actually ends up on.
func (a *App) navigate(target services.ScreenGroup) services.ScreenGroup {
	dest, redirected := services.ResolveRedirect(a.isLoggedIn(), target)
	if redirected {
		a.log.Debug(context.Background(), "redirect", "from", string(target), "to", string(dest))
	}
	a.screen = dest
	return dest
}

func (a *App) getStatus() string {
	if s := a.session.Current(); s != nil {
		return s.Profile.Username
	}
	return "guest"
}

// Run restores persisted state, resolves the starting screen, and hands
// control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if _, err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if err := a.favourites.Load(ctx); err != nil {
		a.log.Warn(ctx, "loading favourites failed", "error", err)
	}
	a.theme.Load(ctx)

	a.navigate(services.GroupEntry)

	printlnFn("Welcome to fittrack CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
