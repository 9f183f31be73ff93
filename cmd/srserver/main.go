/*
Srserver starts an srparse server and begins listening for new connections.

Usage:

	srserver [flags]
	srserver [flags] -l [[ADDRESS]:PORT]
	srserver [flags] --issue-token SUBJECT

Once started, the srparse server will listen for HTTP requests and respond to
them using REST protocol. Clients can store action tables, run token sequences
through parsers built from stored tables, and evaluate arithmetic expressions.
By default, it will listen on localhost:8080.

Settings are taken from, in increasing order of precedence: a config file given
with --config, environment variables, and flags.

If a JWT token secret is not given, one will be automatically generated. As a
consequence, in this mode of operation all tokens are rendered invalid as soon
as the server shuts down. This is suitable for testing, but a secret must be
given if running in production.

The flags are:

	-v, --version
		Give the current version of the srparse server and then exit.

	-c, --config FILE
		Read settings from the given TOML file.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment variable
		SRPARSE_LISTEN_ADDRESS, and if that is not given, will default to
		localhost:8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. If there are less than
		32 bytes in the secret, it will be repeated until it is. The maximum
		size is 64 bytes. If not given, will default to the value of environment
		variable SRPARSE_TOKEN_SECRET.

	--db DRIVER[:PARAMS]
		Use the given DB connection string. DRIVER must be one of the following:
		inmem, sqlite. inmem has no further params. sqlite needs the path to the
		data directory such as sqlite:path/to/db_dir. If not given, will default
		to the value of environment variable SRPARSE_DATABASE, and if that is
		not given, an in-memory database is used.

	-t, --table FILE
		Store the table in FILE at startup under the name of the file without
		its extension. May be given more than once.

	--issue-token SUBJECT
		Print a token for SUBJECT that is valid for --token-ttl and exit
		instead of starting the server.

	--token-ttl DURATION
		How long tokens made with --issue-token are valid for. Defaults to
		24h. A value of 0 makes tokens that never expire.

	--debug
		Enable debug logging.

	--no-color
		Do not use colors in log output.
*/
package main

import (
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dekarrin/srparse/internal/logger"
	"github.com/dekarrin/srparse/internal/version"
	"github.com/dekarrin/srparse/server"
	"github.com/spf13/pflag"
)

const (
	EnvListen = "SRPARSE_LISTEN_ADDRESS"
	EnvSecret = "SRPARSE_TOKEN_SECRET"
	EnvDB     = "SRPARSE_DATABASE"
)

var (
	flagVersion    = pflag.BoolP("version", "v", false, "Give the current version of the srparse server and then exit.")
	flagConfig     = pflag.StringP("config", "c", "", "Read settings from the given TOML file.")
	flagListen     = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret     = pflag.StringP("secret", "s", "", "Use the given secret for token generation.")
	flagDB         = pflag.String("db", "", "Use the given DB connection string.")
	flagTables     = pflag.StringArrayP("table", "t", nil, "Store the table in the given file at startup.")
	flagIssueToken = pflag.String("issue-token", "", "Print a token for the given subject and exit.")
	flagTokenTTL   = pflag.Duration("token-ttl", 24*time.Hour, "How long issued tokens are valid for.")
	flagDebug      = pflag.Bool("debug", false, "Enable debug logging.")
	flagNoColor    = pflag.Bool("no-color", false, "Do not use colors in log output.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (srparse v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	logger.Init("srserver", *flagDebug, *flagNoColor)
	if !*flagDebug {
		log.SetLevel(log.InfoLevel)
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err)
		os.Exit(1)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal("could not start server", "err", err)
	}
	defer srv.Close()
	log.Debug("server initialized")

	if *flagIssueToken != "" {
		tok, err := srv.IssueToken(*flagIssueToken, *flagTokenTTL)
		if err != nil {
			log.Error("could not issue token", "err", err)
			os.Exit(2)
		}
		fmt.Println(tok)
		return
	}

	log.Info("starting srparse server", "version", version.ServerCurrent)
	if err := srv.ServeForever(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(2)
	}
}

// loadConfig assembles the server config from the config file, environment,
// and flags.
func loadConfig() (server.Config, error) {
	var cfg server.Config
	var err error

	if *flagConfig != "" {
		cfg, err = server.LoadConfigFile(*flagConfig)
		if err != nil {
			return cfg, err
		}
	}

	if listenAddr := setting(EnvListen, "listen", *flagListen); listenAddr != "" {
		if _, _, err := net.SplitHostPort(listenAddr); err != nil {
			return cfg, fmt.Errorf("listen address is not in ADDRESS:PORT or :PORT format: %w", err)
		}
		cfg.ListenAddress = listenAddr
	}

	if dbConnStr := setting(EnvDB, "db", *flagDB); dbConnStr != "" {
		cfg.DB, err = server.ParseDBConnString(dbConnStr)
		if err != nil {
			return cfg, err
		}
	}

	if tokSecStr := setting(EnvSecret, "secret", *flagSecret); tokSecStr != "" {
		cfg.TokenSecret = []byte(tokSecStr)
	}
	if len(cfg.TokenSecret) > 0 {
		for len(cfg.TokenSecret) < server.MinSecretSize {
			cfg.TokenSecret = append(cfg.TokenSecret, cfg.TokenSecret...)
		}
		if len(cfg.TokenSecret) > server.MaxSecretSize {
			// keys would be chopped at 64, so rather than the user thinking
			// they have more security by giving a longer key, refuse to start.
			return cfg, fmt.Errorf("token secret is %d bytes, but it must be <= %d bytes", len(cfg.TokenSecret), server.MaxSecretSize)
		}
	} else if *flagIssueToken == "" {
		// use all 64 possible bytes if doing a generated secret
		cfg.TokenSecret = make([]byte, server.MaxSecretSize)
		if _, err := rand.Read(cfg.TokenSecret); err != nil {
			return cfg, fmt.Errorf("could not generate token secret: %w", err)
		}

		// yell at the user bc they should know their secret might be bad
		log.Warn("using generated token secret; all tokens issued will become invalid at shutdown")
	} else {
		return cfg, fmt.Errorf("a token secret is required to issue tokens")
	}

	cfg.Tables = append(cfg.Tables, *flagTables...)

	return cfg, nil
}

// setting gives the value of a flag if it was set, otherwise the value of the
// environment variable.
func setting(env, flagName, flagVal string) string {
	if pflag.Lookup(flagName).Changed {
		return flagVal
	}
	return os.Getenv(env)
}
