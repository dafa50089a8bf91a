package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/willinthon-tech/maquinas/internal/model"
	"github.com/willinthon-tech/maquinas/internal/repository"
	"github.com/willinthon-tech/maquinas/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"hash", "--clave", "secreto"})

	require.NoError(t, root.Execute())

	h := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(h, "$2"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("secreto")))
}

func TestHashCommand_SinClave(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"hash", "--clave", ""})

	assert.Error(t, root.Execute())
}

func TestSeedUsuario_CreaYActualiza(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUsuarioRepository(db)
	ctx := context.Background()

	_, err := seedUsuario(ctx, repo, " admin ", "uno", "Admin", "admin")
	require.NoError(t, err)
	_, err = seedUsuario(ctx, repo, "admin", "dos", "", "")
	require.NoError(t, err)

	var rows []model.Usuario
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "admin", rows[0].Usuario)
	assert.Equal(t, "operador", rows[0].Rol)
	assert.Nil(t, rows[0].Nombre)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rows[0].Clave), []byte("dos")))
}

func TestSeedUsuario_Requeridos(t *testing.T) {
	repo := repository.NewUsuarioRepository(testutil.NewDB(t))

	_, err := seedUsuario(context.Background(), repo, "  ", "x", "", "admin")
	assert.Error(t, err)
	_, err = seedUsuario(context.Background(), repo, "admin", "", "", "admin")
	assert.Error(t, err)
}
