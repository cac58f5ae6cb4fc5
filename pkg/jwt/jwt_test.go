package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ledger/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate("s3cr3t", "admin", "inventory-ledger", 5)
	require.NoError(t, err)

	username, err := jwt.Parse("s3cr3t", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("s3cr3t", "admin", "", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("s3cr3t", "admin", "", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("s3cr3t", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "admin", "", 5)
	assert.Error(t, err)
}

func TestGenerate_JTIUnico(t *testing.T) {
	a, err := jwt.Generate("s3cr3t", "admin", "", 5)
	require.NoError(t, err)
	b, err := jwt.Generate("s3cr3t", "admin", "", 5)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
