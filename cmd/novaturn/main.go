package main

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/spf13/viper"

	gorillaHandlers "github.com/gorilla/handlers"

	"novaturn/internal/data"
	"novaturn/internal/locker"
	"novaturn/internal/routes"
	"novaturn/pkg/arguments"
	"novaturn/pkg/background"
	"novaturn/pkg/catalog"
	"novaturn/pkg/db"
	"novaturn/pkg/dispatcher"
	"novaturn/pkg/duration"
	"novaturn/pkg/logger"
	"novaturn/pkg/notifier"
)

// options :
// Command-line flags accepted by the server, parsed by go-flags
// rather than the standard `flag` package so a malformed invocation
// gets a generated `--help` listing for free.
type options struct {
	Config  string `short:"c" long:"config" description:"Configuration file to customize app behavior (development/production)" default:""`
	Catalog string `long:"catalog" description:"Path to the component catalog YAML file" default:"data/catalog.yaml"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	metadata := arguments.ParseConfig(opts.Config)

	log := logger.NewStdLogger(metadata.InstanceID)

	defer func() {
		if err := recover(); err != nil {
			log.Trace(logger.Fatal, "main", fmt.Sprintf("server crashed after error: %v (stack: %s)", err, debug.Stack()))
		}
	}()

	dbase := db.NewPool(log)
	store := data.NewPgStore(dbase)

	compCatalog, err := catalog.LoadYAMLCatalog(opts.Catalog)
	if err != nil {
		panic(fmt.Errorf("load component catalog: %w", err))
	}

	notify := notifier.NewWebsocketNotifier(log)
	guard := locker.NewWorldGuard()

	server := routes.NewServer(store, notify, compCatalog, guard, log)

	router := dispatcher.NewRouter(log)
	server.Register(router)

	schedulers := startTurnSchedulers(server, log)
	defer func() {
		for _, p := range schedulers {
			p.Stop()
		}
	}()

	aMethods := gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	aOrigins := gorillaHandlers.AllowedOrigins([]string{"*"})
	aHeaders := gorillaHandlers.AllowedHeaders([]string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"})
	corsRouter := gorillaHandlers.CORS(aHeaders, aOrigins, aMethods)(router)

	addr := ":" + strconv.Itoa(metadata.AppPort)
	log.Trace(logger.Notice, "main", fmt.Sprintf("listening on %s", addr))

	if err := http.ListenAndServe(addr, corsRouter); err != nil {
		panic(fmt.Errorf("serve http: %w", err))
	}
}

// startTurnSchedulers :
// Starts one background.Process per configured game, each draining
// its command queue and advancing its turn on its own interval.
// Active game ids are read from the `games.active`
// configuration key; an empty list leaves the server purely
// request-driven (turns only advance via the manual endpoint).
func startTurnSchedulers(server *routes.Server, log logger.Logger) []*background.Process {
	games := viper.GetStringSlice("games.active")
	interval := duration.NewDuration(5 * time.Minute).Clamped()
	retry := duration.NewDuration(30 * time.Second).Clamped()

	processes := make([]*background.Process, 0, len(games))
	for _, gameID := range games {
		gameID := gameID
		id, err := strconv.Atoi(gameID)
		if err != nil {
			log.Trace(logger.Warning, "main", fmt.Sprintf("skipping malformed game id %q in games.active", gameID))
			continue
		}

		p := background.NewTurnScheduler(id, interval.Duration, retry.Duration, log, func() (bool, error) {
			return server.GenerateTurn(gameID, time.Now().UnixNano())
		})
		if err := p.Start(); err != nil {
			log.Trace(logger.Error, "main", fmt.Sprintf("failed to start turn scheduler for game %s: %v", gameID, err))
			continue
		}
		processes = append(processes, p)
	}

	return processes
}
