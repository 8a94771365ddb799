package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/applyline/applyline/internal/client/api"
	"github.com/applyline/applyline/internal/client/config"
	"github.com/applyline/applyline/internal/client/models"
	"github.com/applyline/applyline/internal/client/notifications"
	"github.com/applyline/applyline/internal/client/services"
	"github.com/applyline/applyline/internal/client/session"
	"github.com/applyline/applyline/internal/client/storage"
	"github.com/applyline/applyline/internal/logging"

	_ "modernc.org/sqlite"
)

// defaultSubject is used for batch sends until the user overrides it.
const defaultSubject = "Application for Open Position"

type App struct {
	config  *config.Config
	session *session.Manager
	notify  *notifications.Queue

	auth    *services.AuthService
	apps    *services.ApplicationService
	profile *services.ProfileService
	ai      *services.PersonalizationService

	recipients *models.RecipientList
	subject    string

	reader *bufio.Reader
	db     *sql.DB
	log    logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	tokens := session.NewTokenStore(db)
	gateway := api.NewHTTPClient(c.APIBaseURL, tokens, c.RequestTimeout, log)
	sess := session.NewManager(gateway, tokens, log)

	notify := notifications.NewQueue(c.NotificationTTL, notifications.WithListener(printNotification))

	return &App{
		config:     c,
		session:    sess,
		notify:     notify,
		auth:       services.NewAuthService(sess, notify),
		apps:       services.NewApplicationService(gateway, notify, log),
		profile:    services.NewProfileService(gateway, sess, notify, log),
		ai:         services.NewPersonalizationService(gateway, notify, log),
		recipients: models.NewRecipientList(),
		subject:    defaultSubject,
		reader:     bufio.NewReader(os.Stdin),
		db:         db,
		log:        log,
	}, nil
}

// printNotification renders a queue entry as a terminal line.
func printNotification(n notifications.Notification) {
	switch n.Kind {
	case notifications.KindError:
		printlnFn("[error]", n.Message)
	default:
		printlnFn("[ok]", n.Message)
	}
}

// Run restores the previous session and starts the REPL. It blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Restore(ctx); err != nil {
		return fmt.Errorf("session restore: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

// Close releases the notification timers and the database handle.
func (a *App) Close() {
	a.notify.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}
