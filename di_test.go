package main

import (
	"os"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/buntdb"
)

func TestSetupDI_ShutdownClosesHandles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	injector, err := setupDI()
	require.NoError(t, err)
	f, err := do.Invoke[*logFile](injector)
	require.NoError(t, err)
	db, err := do.Invoke[*credentialDB](injector)
	require.NoError(t, err)

	injector.Shutdown()

	_, err = f.WriteString("after shutdown\n")
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.ErrorIs(t, db.DB.Close(), buntdb.ErrDatabaseClosed)
	assert.Error(t, db.mux.Close(), "lock file should already be closed")
}

func TestOpenCredentialDB_Shutdown(t *testing.T) {
	db, err := openCredentialDB(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, db.Shutdown())

	assert.ErrorIs(t, db.DB.Close(), buntdb.ErrDatabaseClosed)
}
