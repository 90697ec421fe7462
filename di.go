package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexflint/go-filemutex"
	"github.com/samber/do/v2"
	"github.com/tidwall/buntdb"

	"papershift/config"
	"papershift/credential"
	"papershift/papershift"
)

func setupDI() (do.Injector, error) {
	dir, err := getPapershiftDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.Provide(injector, func(i do.Injector) (*logFile, error) {
		return openLogFile(dir)
	})
	do.Provide(injector, func(i do.Injector) (*slog.Logger, error) {
		f, err := do.Invoke[*logFile](i)
		if err != nil {
			return nil, err
		}
		return newLogger(f, do.MustInvoke[*config.Config](i))
	})
	do.Provide(injector, func(i do.Injector) (*credentialDB, error) {
		return openCredentialDB(dir)
	})
	do.Provide(injector, func(i do.Injector) (credential.Store, error) {
		db := do.MustInvoke[*credentialDB](i)
		return credential.NewStore(db.DB, db.mux), nil
	})
	do.Provide(injector, func(i do.Injector) (papershift.SessionFetcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger, err := do.Invoke[*slog.Logger](i)
		if err != nil {
			return nil, err
		}
		store, err := do.Invoke[credential.Store](i)
		if err != nil {
			return nil, err
		}
		creds, err := credential.Resolve(cfg.EnvCredentials(), store)
		if err != nil {
			return nil, err
		}
		return papershift.NewClient(cfg.BaseURL, creds, logger)
	})
	return injector, nil
}

// credentialDB closes the store when the injector shuts down.
type credentialDB struct {
	*buntdb.DB
	mux *filemutex.FileMutex
}

func (db *credentialDB) Shutdown() error {
	return errors.Join(db.Close(), db.mux.Close())
}

func openCredentialDB(dir string) (*credentialDB, error) {
	db, err := buntdb.Open(filepath.Join(dir, "papershift.db"))
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	mux, err := filemutex.New(filepath.Join(dir, "papershift.lock"))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create credential lock: %w", err)
	}
	return &credentialDB{DB: db, mux: mux}, nil
}

// logFile closes the log when the injector shuts down.
type logFile struct {
	*os.File
}

func (f *logFile) Shutdown() error {
	return f.Close()
}

func openLogFile(dir string) (*logFile, error) {
	f, err := os.OpenFile(filepath.Join(dir, "log.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}
	return &logFile{File: f}, nil
}

func newLogger(out io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	return slog.New(
		slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: level,
		}),
	), nil
}

func getPapershiftDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".papershift")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}
